package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkovacic/devlink/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = "id, user_id, company, website, location, bio, status, skills, social, experience, education, created_at, updated_at"

func (r *ProfileRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE user_id = $1", userID)

	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio,
		&p.Status, &p.Skills, &p.Social, &p.Experience, &p.Education,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetByUserJoined(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
		       p.skills, p.social, p.experience, p.education, p.created_at, p.updated_at,
		       u.name, u.avatar
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p domain.Profile
	var owner domain.ProfileOwner
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio,
		&p.Status, &p.Skills, &p.Social, &p.Experience, &p.Education,
		&p.CreatedAt, &p.UpdatedAt,
		&owner.Name, &owner.Avatar,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Owner = &owner
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	query := `
		SELECT p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
		       p.skills, p.social, p.experience, p.education, p.created_at, p.updated_at,
		       u.name, u.avatar
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Always a JSON array on the wire, even with no rows.
	profiles := []domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		var owner domain.ProfileOwner
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio,
			&p.Status, &p.Skills, &p.Social, &p.Experience, &p.Education,
			&p.CreatedAt, &p.UpdatedAt,
			&owner.Name, &owner.Avatar,
		); err != nil {
			return nil, err
		}
		p.Owner = &owner
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Upsert writes the whole profile document keyed by the owning user. Field
// merging happens in the service before the write; the row is replaced as one
// unit.
func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, company, website, location, bio, status, skills, social, experience, education, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Company, p.Website, p.Location, p.Bio,
		p.Status, p.Skills, p.Social, p.Experience, p.Education,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProfileRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM profiles WHERE user_id = $1", userID)
	return err
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	// GetByUser returns the bare profile document, or nil when absent.
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// GetByUserJoined additionally fills Owner with the user's name/avatar.
	GetByUserJoined(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	// Upsert writes the whole document keyed by UserID.
	Upsert(ctx context.Context, profile *domain.Profile) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

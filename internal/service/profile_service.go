package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/domain"
	"github.com/dkovacic/devlink/internal/repository"
	"github.com/dkovacic/devlink/pkg/normalize"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSkillsRequired  = errors.New("skills are required")
)

// ProfileService owns the profile aggregate: the document plus its experience
// and education sub-collections, mutated as one unit per operation.
//
// Every mutation is a read-modify-write of the whole document. Two concurrent
// mutations of the same profile race and the last write wins; callers own at
// most their own profile, so the race is confined to one user's own requests.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpsertProfileInput distinguishes absent fields (nil) from cleared fields
// (pointer to empty string): absent fields keep their stored value.
type UpsertProfileInput struct {
	Company  *string          `json:"company"`
	Website  *string          `json:"website"`
	Location *string          `json:"location"`
	Bio      *string          `json:"bio"`
	Status   string           `json:"status"`
	Skills   domain.SkillList `json:"skills"`

	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

type ExperienceInput struct {
	Title       string       `json:"title"`
	Company     string       `json:"company"`
	Location    string       `json:"location"`
	From        domain.Date  `json:"from"`
	To          *domain.Date `json:"to"`
	Current     bool         `json:"current"`
	Description string       `json:"description"`
}

type EducationInput struct {
	School       string       `json:"school"`
	Degree       string       `json:"degree"`
	FieldOfStudy string       `json:"fieldofstudy"`
	From         domain.Date  `json:"from"`
	To           *domain.Date `json:"to"`
	Current      bool         `json:"current"`
	Description  string       `json:"description"`
}

func (s *ProfileService) GetOwn(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserJoined(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.GetOwn(ctx, userID)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the profile when absent and otherwise merges the supplied
// fields into the stored document. Status always overwrites; skills overwrite
// when supplied and are mandatory on first create. The website and any
// populated social link are normalized to canonical https form, blank values
// are left alone.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, input UpsertProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile == nil {
		if len(input.Skills) == 0 {
			return nil, ErrSkillsRequired
		}
		profile = &domain.Profile{
			ID:         uuid.New(),
			UserID:     userID,
			Skills:     []string{},
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			CreatedAt:  now,
		}
	}

	profile.Status = input.Status
	if input.Skills != nil {
		profile.Skills = input.Skills
	}
	if input.Company != nil {
		profile.Company = *input.Company
	}
	if input.Website != nil {
		profile.Website = normalize.URL(*input.Website)
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	applySocial(&profile.Social.Youtube, input.Youtube)
	applySocial(&profile.Social.Twitter, input.Twitter)
	applySocial(&profile.Social.Facebook, input.Facebook)
	applySocial(&profile.Social.Linkedin, input.Linkedin)
	applySocial(&profile.Social.Instagram, input.Instagram)
	profile.UpdatedAt = now

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, input ExperienceInput) (*domain.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}

	// Newest entry goes to the head.
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)

	return s.save(ctx, profile)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, input EducationInput) (*domain.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	profile.Education = append([]domain.Education{entry}, profile.Education...)

	return s.save(ctx, profile)
}

// RemoveExperience drops the entry with the given id. A miss is not an error:
// the profile is saved unchanged and returned, so the delete is idempotent.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Experience[:0]
	for _, exp := range profile.Experience {
		if exp.ID != experienceID {
			kept = append(kept, exp)
		}
	}
	profile.Experience = kept

	return s.save(ctx, profile)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Education[:0]
	for _, edu := range profile.Education {
		if edu.ID != educationID {
			kept = append(kept, edu)
		}
	}
	profile.Education = kept

	return s.save(ctx, profile)
}

// ownedProfile loads the caller's profile for mutation. The id always comes
// from the verified token, so cross-user edits cannot be expressed.
func (s *ProfileService) ownedProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	profile.UpdatedAt = time.Now()
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

func applySocial(dst *string, val *string) {
	if val == nil {
		return
	}
	*dst = normalize.URL(*val)
}

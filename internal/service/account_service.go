package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/repository"
)

// AccountService removes an account and everything that only exists in its
// context: posts, then the profile, then the user record. The user row goes
// strictly last so a failure partway through never orphans ownership
// references without a recovery path.
//
// The store gives per-row atomicity only, so the cascade is not atomic as a
// whole and there is no rollback. Every step is a no-op when its rows are
// already gone, which makes the whole call safe to retry after a partial
// failure.
type AccountService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewAccountService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.postRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting posts: %w", err)
	}

	if err := s.profileRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

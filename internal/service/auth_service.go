package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/domain"
	"github.com/dkovacic/devlink/internal/password"
	"github.com/dkovacic/devlink/internal/repository"
	"github.com/dkovacic/devlink/internal/token"
)

var (
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers unknown email and wrong password alike so
	// responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	avatar := gravatarURL(email)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Avatar:       &avatar,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &TokenResponse{Token: tok}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &TokenResponse{Token: tok}, nil
}

// CurrentUser resolves the caller from the guard-verified id. The password
// hash stays server-side; the domain type never serializes it.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}

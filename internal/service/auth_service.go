package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/validation"
)

const bcryptCost = 10

// AuthService handles registration, login and credential resolution.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register validates the input, creates the user with a hashed password
// and issues a token bound to the new identity.
func (s *authService) Register(ctx context.Context, username, email, password string) (string, *model.User, error) {
	username = validation.SanitizeInput(username)

	if !validation.ValidateUsername(username) {
		return "", nil, apperrors.NewValidationError("Username must be 3-20 characters long")
	}
	if !validation.ValidateEmail(email) {
		return "", nil, apperrors.NewValidationError("Please enter a valid email")
	}
	if !validation.ValidatePassword(password) {
		return "", nil, apperrors.NewValidationError("Password must be at least 6 characters long")
	}

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return "", nil, apperrors.ErrUsernameTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check username: %w", err)
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return "", nil, apperrors.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and issues a token. Unknown usernames and
// wrong passwords fail the same way.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// CurrentUser resolves a token's user ID to the stored user.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Logout revokes the token for the remainder of its lifetime.
func (s *authService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.tokenStore.DenyToken(ctx, tokenID, ttl)
}

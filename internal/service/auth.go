package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/crypto"
	"github.com/planora/planora-go/internal/i18n"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// UserStore is the user persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateLanguage(ctx context.Context, id, language string) error
}

// AuthService handles registration, login, token refresh and profile access.
type AuthService struct {
	users         UserStore
	accessSecret  string
	refreshSecret string
}

// NewAuthService creates a new AuthService. The two secrets must be
// distinct; the config layer enforces that before this is reached.
func NewAuthService(users UserStore, accessSecret, refreshSecret string) *AuthService {
	return &AuthService{
		users:         users,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
	}
}

// Register creates a new account and returns a token pair.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	language := req.Language
	if language == "" {
		language = i18n.DefaultLanguage
	}
	if !i18n.IsSupported(language) {
		return model.AuthResponse{}, ErrUnsupportedLanguage
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Language:     language,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.tokenPair(user)
}

// Login authenticates credentials and returns a token pair. A wrong
// password and an unknown email are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The user
// must still exist; there is no revocation list, so until natural expiry a
// refresh token is otherwise honored.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.AuthResponse, error) {
	userID, err := crypto.VerifyRefreshToken(refreshToken, s.refreshSecret)
	if err != nil {
		return model.AuthResponse{}, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidRefreshToken
		}
		return model.AuthResponse{}, err
	}

	return s.tokenPair(user)
}

// Profile returns safe user data for the authenticated account.
func (s *AuthService) Profile(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrNotFound
		}
		return model.UserResponse{}, err
	}
	return userResponse(user), nil
}

// UpdateLanguage changes the stored locale preference.
func (s *AuthService) UpdateLanguage(ctx context.Context, userID, language string) error {
	if !i18n.IsSupported(language) {
		return ErrUnsupportedLanguage
	}
	err := s.users.UpdateLanguage(ctx, userID, language)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *AuthService) tokenPair(user *model.User) (model.AuthResponse, error) {
	access, err := crypto.IssueAccessToken(user.ID, s.accessSecret)
	if err != nil {
		return model.AuthResponse{}, err
	}
	refresh, err := crypto.IssueRefreshToken(user.ID, s.refreshSecret)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userResponse(user),
	}, nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}
}

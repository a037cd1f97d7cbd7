package services

import (
	"context"
	"fmt"

	"github.com/imovia/api/internal/auth"
	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/repository"
)

// AuthService authenticates credentials and issues session tokens.
type AuthService interface {
	// Login verifies the username/password pair and returns the account
	// with a signed session token. Failures are uniform
	// ErrInvalidCredentials regardless of which check failed.
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// authService is the concrete implementation of AuthService.
type authService struct {
	repo   repository.UserRepository
	issuer *auth.TokenIssuer
	log    *logger.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo repository.UserRepository, issuer *auth.TokenIssuer, log *logger.Logger) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to look up user at login", err, map[string]interface{}{
			"username": username,
		})
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		s.log.Warn("Login rejected", map[string]interface{}{
			"username": username,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(*user)
	if err != nil {
		s.log.Error("Failed to issue session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("Login succeeded", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})
	return user, token, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/auth"
)

// CredentialStore looks up login credentials by email.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	creds      CredentialStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(creds CredentialStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		creds:      creds,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the email/password pair and returns a signed token
// carrying the credential's role. An unknown email and a wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := s.creds.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving credential: %w", err)
	}

	if !auth.CheckPassword(cred.PasswordEnc, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(cred.Email, string(cred.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("email", cred.Email).Str("role", string(cred.Role)).Msg("Login successful")

	return &dto.LoginResponse{
		Token: token,
		Role:  string(cred.Role),
	}, nil
}

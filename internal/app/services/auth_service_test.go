package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/auth"
)

type fakeCredentialStore struct {
	creds map[string]*models.Credential
}

func (f *fakeCredentialStore) GetByEmail(_ context.Context, email string) (*models.Credential, error) {
	cred, ok := f.creds[email]
	if !ok {
		return nil, repositories.ErrCredentialNotFound
	}
	return cred, nil
}

func newTestAuthService(t *testing.T, creds map[string]*models.Credential) *AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "academic-tracker-test",
	})
	return NewAuthService(&fakeCredentialStore{creds: creds}, jwtService, zerolog.Nop())
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	creds := map[string]*models.Credential{
		"t1@example.com": {Email: "t1@example.com", PasswordEnc: hashed, Role: models.RoleTeacher},
	}
	svc := newTestAuthService(t, creds)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "t1@example.com",
			Password: "correct horse",
		})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if resp.Role != "teacher" {
			t.Errorf("expected role teacher, got %s", resp.Role)
		}
		if resp.Token == "" {
			t.Error("expected a signed token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "t1@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})
}

func TestLoginTokenCarriesEmailAndRole(t *testing.T) {
	hashed, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	creds := map[string]*models.Credential{
		"s1@example.com": {Email: "s1@example.com", PasswordEnc: hashed, Role: models.RoleStudent},
	}
	svc := newTestAuthService(t, creds)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "s1@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "academic-tracker-test",
	})
	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Email != "s1@example.com" {
		t.Errorf("expected email claim s1@example.com, got %s", claims.Email)
	}
	if claims.Role != "student" {
		t.Errorf("expected role claim student, got %s", claims.Role)
	}
}

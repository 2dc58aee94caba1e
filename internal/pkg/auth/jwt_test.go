package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "academic-tracker-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("t1@example.com", "teacher")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Email != "t1@example.com" {
		t.Errorf("expected email t1@example.com, got %s", claims.Email)
	}
	if claims.Role != "teacher" {
		t.Errorf("expected role teacher, got %s", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken("t1@example.com", "teacher")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken("t1@example.com", "teacher")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "academic-tracker-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different key")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hashed == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hashed, "correct horse") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("expected non-matching password to fail")
	}
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// Auth error types
var (
	ErrCredentialNotFound = errors.New("credential not found")
)

// AuthRepository handles database operations for login credentials
type AuthRepository struct {
	db *pgxpool.Pool
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{
		db: db,
	}
}

// GetByEmail retrieves a credential by email
func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query := `
		SELECT email, password_enc, role
		FROM auth
		WHERE email = $1
	`

	var cred models.Credential
	err := r.db.QueryRow(ctx, query, email).Scan(
		&cred.Email,
		&cred.PasswordEnc,
		&cred.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("error retrieving credential: %w", err)
	}

	return &cred, nil
}

// Create inserts a new credential row
func (r *AuthRepository) Create(ctx context.Context, cred *models.Credential) error {
	query := `
		INSERT INTO auth (email, password_enc, role)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, cred.Email, cred.PasswordEnc, cred.Role); err != nil {
		return err
	}
	return nil
}

// Delete removes a credential row by email
func (r *AuthRepository) Delete(ctx context.Context, email string) error {
	query := `DELETE FROM auth WHERE email = $1`

	if _, err := r.db.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("error deleting credential: %w", err)
	}
	return nil
}

// EmailExists checks if a credential exists for the given email
func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM auth WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking credential existence: %w", err)
	}
	return exists, nil
}

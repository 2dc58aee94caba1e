package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/config"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/auth"
)

// CreateDefaultAdmin ensures an admin-role credential exists so the admin
// panel is reachable on a fresh database. Existing credentials are never
// overwritten.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	authRepo := repositories.NewAuthRepository(dbPool)

	exists, err := authRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("error checking admin credential: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	cred := &models.Credential{
		Email:       cfg.Admin.Email,
		PasswordEnc: hashed,
		Role:        models.RoleAdmin,
	}
	if err := authRepo.Create(ctx, cred); err != nil {
		return fmt.Errorf("error creating admin credential: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin credential created")
	return nil
}

// Package bootstrap wires configuration, database, repositories, services
// and controllers together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/nidhi20908/Academic-tracker/internal/app/controllers"
	appMigrations "github.com/nidhi20908/Academic-tracker/internal/app/migrations"
	appRepos "github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	appRoutes "github.com/nidhi20908/Academic-tracker/internal/app/routes"
	appServices "github.com/nidhi20908/Academic-tracker/internal/app/services"
	"github.com/nidhi20908/Academic-tracker/internal/config"
	"github.com/nidhi20908/Academic-tracker/internal/db"
	appMiddleware "github.com/nidhi20908/Academic-tracker/internal/middleware"
	pkgAuth "github.com/nidhi20908/Academic-tracker/internal/pkg/auth"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/helpers"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/logger"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/validation"
	"github.com/nidhi20908/Academic-tracker/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AttendanceService *appServices.AttendanceService
	MarksService      *appServices.MarksService
	RosterService     *appServices.RosterService
	AuthService       *appServices.AuthService
	AuthController    *appControllers.AuthController
	TeacherController *appControllers.TeacherController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := "configs/config.yaml"
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin credential.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 8760*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AuthRepository, deps.JWTService, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.StudentRepository)
	deps.MarksService = appServices.NewMarksService(deps.Repos.MarksRepository, deps.Repos.StudentRepository)
	deps.RosterService = appServices.NewRosterService(
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.AuthRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.TeacherController = appControllers.NewTeacherController(deps.AttendanceService, deps.MarksService, deps.RosterService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.AttendanceService, deps.MarksService, deps.RosterService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.RosterService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCustomValidators(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validators")
		}
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TeacherController,
		deps.StudentController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

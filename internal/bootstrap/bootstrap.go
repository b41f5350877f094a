package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/pharmalab/internal/app/controllers"
	appMigrations "github.com/yigit/pharmalab/internal/app/migrations"
	appRepos "github.com/yigit/pharmalab/internal/app/repositories"
	appRoutes "github.com/yigit/pharmalab/internal/app/routes"
	appServices "github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/config"
	"github.com/yigit/pharmalab/internal/db"
	appMiddleware "github.com/yigit/pharmalab/internal/middleware"
	pkgAuth "github.com/yigit/pharmalab/internal/pkg/auth"
	"github.com/yigit/pharmalab/internal/pkg/filestorage"
	"github.com/yigit/pharmalab/internal/pkg/logger"
	"github.com/yigit/pharmalab/internal/pkg/metrics"
	"github.com/yigit/pharmalab/internal/pkg/session"
	"github.com/yigit/pharmalab/internal/pkg/websocket"
)

// DefaultConfigPath is used when no --config flag is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	Revocations session.RevocationStore
	Redis       *redis.Client // nil when revocations live in Postgres
	Metrics     *metrics.Metrics
	Hub         *websocket.Hub
	FileStorage *filestorage.LocalStorage

	AuthService         *appServices.AuthService
	UserService         appServices.UserService
	PatientService      appServices.PatientService
	MedicationService   appServices.MedicationService
	ClinicalNoteService appServices.ClinicalNoteService
	PrescriptionService appServices.PrescriptionService
	DashboardService    appServices.DashboardService
	BackupService       *appServices.BackupService

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies pending SQL files from the configured migrations directory
func RunMigrations(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (int, error) {
	dir := cfg.Database.MigrationsDir
	if _, err := os.Stat(dir); err != nil {
		lgr.Error().Str("path", dir).Msg("Migrations directory not found")
		return 0, fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	lgr.Info().Str("path", dir).Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, lgr).MigrateFromDirectory(ctx, dir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return applied, nil
}

// SetupDatabase connects and migrates
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	if _, err := RunMigrations(ctx, cfg, database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if err := setupRevocations(ctx, cfg, deps); err != nil {
		return nil, err
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		SessionTTL:  cfg.SessionTTL(),
		TokenIssuer: cfg.Session.Issuer,
	})
	deps.Metrics = metrics.New()
	deps.Hub = websocket.NewHub(logger.With("feed"))

	// Services
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Revocations, deps.JWTService, deps.Metrics, logger.With("auth"))
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, logger.With("users"))
	deps.PatientService = appServices.NewPatientService(
		deps.Repos.PatientRepository,
		deps.Repos.PrescriptionRepository,
		deps.Repos.ClinicalNoteRepository,
		logger.With("patients"),
	)
	deps.MedicationService = appServices.NewMedicationService(deps.Repos.MedicationRepository, logger.With("medications"))
	deps.ClinicalNoteService = appServices.NewClinicalNoteService(deps.Repos.ClinicalNoteRepository, logger.With("notes"))
	deps.PrescriptionService = appServices.NewPrescriptionService(
		deps.Repos.PrescriptionRepository,
		deps.Repos.PatientRepository,
		deps.Repos.MedicationRepository,
		deps.Hub,
		deps.Metrics,
		logger.With("prescriptions"),
	)
	deps.BackupService = appServices.NewBackupService(deps.FileStorage, logger.With("backup"))
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.PatientRepository,
		deps.Repos.MedicationRepository,
		deps.Repos.PrescriptionRepository,
		deps.BackupService,
		logger.With("dashboard"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, cfg.Session.CookieName, lgr)

	deps.Controllers = &appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, cfg.Session.CookieName, cfg.Session.Secure, lgr),
		Dashboard:    appControllers.NewDashboardController(deps.DashboardService, lgr),
		Patient:      appControllers.NewPatientController(deps.PatientService, deps.ClinicalNoteService, lgr),
		Medication:   appControllers.NewMedicationController(deps.MedicationService, lgr),
		Prescription: appControllers.NewPrescriptionController(deps.PrescriptionService, deps.Hub, lgr),
		Calculator:   appControllers.NewCalculatorController(deps.Metrics, lgr),
		User:         appControllers.NewUserController(deps.UserService, lgr),
		Health:       appControllers.NewHealthController(pool),
	}

	return deps, nil
}

// setupRevocations picks Redis when an address is configured, the revoked_sessions table otherwise
func setupRevocations(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	lgr := deps.Logger
	if cfg.Redis.Addr == "" {
		purged, err := deps.Repos.RevokedSessionRepository.PurgeExpired(ctx)
		if err != nil {
			lgr.Warn().Err(err).Msg("Failed to purge expired revoked sessions")
		}
		lgr.Info().Int64("purged", purged).Msg("Session revocations stored in Postgres")
		deps.Revocations = deps.Repos.RevokedSessionRepository
		return nil
	}

	client, err := session.NewRedisClient(ctx, session.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Session revocations stored in Redis")
	deps.Redis = client
	deps.Revocations = session.NewRedisStore(client)
	return nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	lgr := deps.Logger
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.With("http")), deps.Metrics.Middleware())

	router.SetFuncMap(appRoutes.TemplateFuncs())
	router.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesDir, "*.html"))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Metrics.Handler())

	return router
}

// Close releases the Redis client if one was opened
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}

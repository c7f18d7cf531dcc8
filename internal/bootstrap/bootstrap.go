package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/derya/retakereg/docs" // Import generated swagger docs
	appControllers "github.com/derya/retakereg/internal/app/controllers"
	appMigrations "github.com/derya/retakereg/internal/app/migrations"
	appRepos "github.com/derya/retakereg/internal/app/repositories"
	appRoutes "github.com/derya/retakereg/internal/app/routes"
	appServices "github.com/derya/retakereg/internal/app/services"
	"github.com/derya/retakereg/internal/cache"
	"github.com/derya/retakereg/internal/config"
	"github.com/derya/retakereg/internal/db"
	"github.com/derya/retakereg/internal/jobs"
	appMiddleware "github.com/derya/retakereg/internal/middleware"
	"github.com/derya/retakereg/internal/pkg/helpers"
	"github.com/derya/retakereg/internal/pkg/logger"
	"github.com/derya/retakereg/internal/pkg/validation"
	"github.com/derya/retakereg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AdmissionService   appServices.AdmissionService   // Interface type
	OfferingService    appServices.OfferingService    // Interface type
	EnrollmentService  appServices.EnrollmentService  // Interface type
	WindowService      appServices.WindowService      // Interface type
	StudentService     appServices.StudentService     // Interface type
	RequirementService appServices.RequirementService // Interface type

	AdmissionController   *appControllers.AdmissionController
	OfferingController    *appControllers.OfferingController
	EnrollmentController  *appControllers.EnrollmentController
	WindowController      *appControllers.WindowController
	StudentController     *appControllers.StudentController
	RequirementController *appControllers.RequirementController

	Repos  *appRepos.Repositories // Include the main repo container
	Cache  *cache.RedisCache      // Nil when Redis is disabled
	Jobs   *jobs.Manager          // Started and stopped by the server
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelMigrate()
	if err := migrator.MigrateFromDirectory(migrateCtx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
			// Log the error but don't necessarily fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// SetupCache connects to Redis when it is enabled. A nil cache is valid;
// every read path treats it as a permanent miss.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (*cache.RedisCache, error) {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis cache disabled")
		return nil, nil
	}

	ttl := helpers.ParseDuration(cfg.Redis.TTL, 5*time.Minute)
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL, ttl)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to Redis")
		return nil, err
	}

	lgr.Info().Dur("ttl", ttl).Msg("Redis cache connected")
	return redisCache, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisCache *cache.RedisCache, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Cache: redisCache}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// Initialize services
	lockWait := helpers.ParseDuration(cfg.Registration.LockWait, 3*time.Second)
	deps.AdmissionService = appServices.NewAdmissionService(
		deps.Repos.OfferingRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.WindowRepository,
		deps.Repos.EnrollmentRepository,
		lockWait,
		lgr,
	)

	deps.OfferingService = appServices.NewOfferingService(deps.Repos.OfferingRepository, redisCache)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, deps.Repos.StudentRepository)
	deps.WindowService = appServices.NewWindowService(deps.Repos.WindowRepository, redisCache)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.RequirementService = appServices.NewRequirementService(
		deps.Repos.RequirementRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
	)

	// Initialize controllers
	deps.AdmissionController = appControllers.NewAdmissionController(deps.AdmissionService)
	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.WindowController = appControllers.NewWindowController(deps.WindowService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.RequirementController = appControllers.NewRequirementController(deps.RequirementService)

	// Background jobs; the server starts them once it is ready to run.
	pendingTTL := helpers.ParseDuration(cfg.Registration.PendingTTL, 72*time.Hour)
	deps.Jobs = jobs.NewManager(deps.EnrollmentService, pendingTTL, cfg.Registration.ExpiryCron, lgr)

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

	validation.RegisterBindingValidators()

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AdmissionController,
		deps.OfferingController,
		deps.EnrollmentController,
		deps.WindowController,
		deps.StudentController,
		deps.RequirementController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appClients "github.com/yigit/campus/internal/app/clients"
	appControllers "github.com/yigit/campus/internal/app/controllers"
	appMigrations "github.com/yigit/campus/internal/app/migrations"
	appRepos "github.com/yigit/campus/internal/app/repositories"
	memoryRepos "github.com/yigit/campus/internal/app/repositories/memory"
	appRoutes "github.com/yigit/campus/internal/app/routes"
	appServices "github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
	appMiddleware "github.com/yigit/campus/internal/middleware"
	pkgAuth "github.com/yigit/campus/internal/pkg/auth"
	"github.com/yigit/campus/internal/pkg/helpers"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       appServices.Services
	Controllers    appRoutes.Controllers
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	CatalogClient  *appClients.CatalogClient // set only for the enrollment role
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A non-empty role overrides the configured one.
func LoadConfigAndSetupLogger(configPath, role string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if role != "" {
		cfg.Server.Role = role
		if err := cfg.Validate(); err != nil {
			logger.Error().Err(err).Str("role", role).Msg("Invalid role override")
			return nil, zerolog.Logger{}, err
		}
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Role:   cfg.Server.Role,
	})

	lgr := logger.Logger()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs the migrations of the
// schema sets the role owns. It returns nil for the memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory storage; data is lost on restart")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(context.Background(), cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if !cfg.Database.AutoMigrate {
		lgr.Info().Msg("Automatic migrations disabled")
		return database, nil
	}

	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(
		database.Pool,
		appMigrations.SetsForRole(cfg.ServesCatalog(), cfg.ServesEnrollment()),
		lgr,
	)
	if err != nil {
		database.Close()
		return nil, err
	}
	defer migrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers for the configured role.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if database != nil {
		deps.Repos = appRepos.NewRepositories(database.Pool)
	} else {
		deps.Repos = memoryRepos.NewRepositories()
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.ServiceAuth.Secret,
		TokenExp:    helpers.ParseDuration(cfg.ServiceAuth.TokenTTL, 5*time.Minute),
		TokenIssuer: cfg.ServiceAuth.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	checks := map[string]appControllers.Pinger{}
	if database != nil {
		checks["database"] = database
	}

	if cfg.ServesCatalog() {
		opts := appServices.CourseOptions{
			DeletePolicy:  appServices.DeletePolicy(cfg.Catalog.DeletePolicy),
			ConflictScope: appServices.ConflictScope(cfg.Catalog.ConflictScope),
		}
		// With both halves in one process the catalog can see enrollment rows directly.
		if cfg.ServesEnrollment() {
			opts.References = deps.Repos.Enrollments
		}
		deps.Services.Course = appServices.NewCourseService(deps.Repos.Courses, opts, logger.Component("course"))
		deps.Controllers.Course = appControllers.NewCourseController(deps.Services.Course)
		deps.Controllers.SeatPath = cfg.Server.Role == config.RoleCatalog
	}

	if cfg.ServesEnrollment() {
		var directory appServices.CourseDirectory
		seatMode := appServices.SeatsDerived
		if deps.Services.Course != nil {
			directory = appServices.NewLocalCourseDirectory(deps.Services.Course)
		} else {
			deps.CatalogClient = appClients.NewCatalogClient(appClients.CatalogConfig{
				BaseURL: cfg.Catalog.BaseURL,
				Timeout: helpers.ParseDuration(cfg.Catalog.Timeout, 3*time.Second),
			}, deps.JWTService, logger.Component("catalog-client"))
			directory = deps.CatalogClient
			seatMode = appServices.SeatsCounter
			checks["catalog"] = deps.CatalogClient
		}

		deps.Services.Student = appServices.NewStudentService(deps.Repos.Students, deps.Repos.Enrollments, logger.Component("student"))
		deps.Services.Enrollment = appServices.NewEnrollmentService(
			deps.Repos.Enrollments,
			deps.Repos.Students,
			directory,
			appServices.EnrollmentOptions{
				SeatMode:      seatMode,
				AllowReenroll: cfg.Enrollment.AllowReenroll,
			},
			logger.Component("enrollment"),
		)
		deps.Services.Reconciler = appServices.NewSeatReconciler(
			deps.Repos.Enrollments,
			directory,
			cfg.Enrollment.ReconcileWorkers,
			logger.Component("seat-reconciler"),
		)

		deps.Controllers.Student = appControllers.NewStudentController(deps.Services.Student)
		deps.Controllers.Enrollment = appControllers.NewEnrollmentController(deps.Services.Enrollment, deps.Services.Reconciler)
	}

	deps.Controllers.Health = appControllers.NewHealthController(cfg.Server.Role, checks)

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), deps.Services.Course, deps.Services.Student, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}

// WrapHandler adds CORS handling and request tracing around the router.
func WrapHandler(cfg *config.Config, router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", appMiddleware.RequestIDHeader},
		ExposedHeaders:   []string{appMiddleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return otelhttp.NewHandler(c.Handler(router), "campus-"+cfg.Server.Role)
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutriclinic/config"
	deliveryHttp "nutriclinic/internal/delivery/http"
	"nutriclinic/internal/delivery/http/handler"
	"nutriclinic/internal/delivery/http/middleware"
	"nutriclinic/internal/infrastructure/cache"
	"nutriclinic/internal/infrastructure/database"
	"nutriclinic/internal/infrastructure/textgen"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/service"
	"nutriclinic/internal/usecase"
	"nutriclinic/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized. The
// schema is reconciled before the server is built; a failed reconciliation
// aborts startup.
func New(ctx context.Context) (*App, error) {
	app, err := open(ctx)
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	var planCache service.PlanCache
	if app.Config.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(app.Config.Redis)
		if err != nil {
			app.Log.Warnf("Redis unavailable, meal plans will not be cached: %v", err)
		} else {
			app.RedisClient = redisClient
			planCache = cache.NewMealPlanCache(redisClient)
			app.Log.Info("Redis connected successfully")
		}
	}

	// Initialize generative text client
	var generator textgen.Generator
	if app.Config.GenAI.Enabled() {
		client, err := textgen.NewGeminiClient(ctx, app.Config.GenAI)
		if err != nil {
			app.Log.Warnf("Generative text client unavailable: %v", err)
		} else {
			generator = client
			app.Log.Infof("Generative text client ready, models: %v", app.Config.GenAI.Models)
		}
	} else {
		app.Log.Info("GENAI_API_KEY not set, meal plan generation disabled")
	}

	app.Server = initializeServer(app.Config, app.Log, app.DB, generator, planCache)

	return app, nil
}

// Reconcile opens the store, converges its schema and reports the columns
// it added.
func Reconcile(ctx context.Context) ([]database.AddedColumn, error) {
	app, err := openStore()
	if err != nil {
		return nil, err
	}
	defer app.Close()

	return reconcile(ctx, app)
}

func open(ctx context.Context) (*App, error) {
	app, err := openStore()
	if err != nil {
		return nil, err
	}

	if _, err := reconcile(ctx, app); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

func openStore() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	logMode := logger.Warn
	if cfg.IsDev() {
		logMode = logger.Info
	}

	db, err := database.NewSQLiteConnection(cfg.DB, logMode)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Infof("Database opened at %s", cfg.DB.Path)

	return &App{Config: cfg, Log: log, DB: db}, nil
}

func reconcile(ctx context.Context, app *App) ([]database.AddedColumn, error) {
	if err := database.Migrate(app.DB, app.Log); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	added, err := database.NewReconciler(app.DB, app.Log, database.ExpectedSchema).Reconcile(ctx)
	if err != nil {
		return added, err
	}
	if len(added) > 0 {
		app.Log.WithField("columns", len(added)).Info("Schema reconciled")
	}

	return added, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	generator textgen.Generator,
	planCache service.PlanCache,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	// Initialize services
	var models []string
	if generator != nil {
		models = cfg.GenAI.Models
	}
	mealPlanService := service.NewMealPlanService(log, generator, models, planCache, cfg.Redis.TTL)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, patientRepo, prescriptionRepo)
	ledgerUsecase := usecase.NewLedgerUsecase(log, ledgerRepo)
	metricsUsecase := usecase.NewMetricsUsecase()
	mealPlanUsecase := usecase.NewMealPlanUsecase(log, generator != nil, patientRepo, mealPlanService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, prescriptionRepo, ledgerRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	ledgerHandler := handler.NewLedgerHandler(ledgerUsecase, customValidator)
	metricsHandler := handler.NewMetricsHandler(metricsUsecase, customValidator)
	mealPlanHandler := handler.NewMealPlanHandler(mealPlanUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	requestLogger := middleware.NewRequestLogger(log)
	corsMiddleware := middleware.NewCORSMiddleware("")

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		prescriptionHandler,
		ledgerHandler,
		metricsHandler,
		mealPlanHandler,
		dashboardHandler,
		requestLogger,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Generation calls can take up to the configured timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second+app.Config.GenAI.Timeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			app.Log.Warnf("Failed to close database: %v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

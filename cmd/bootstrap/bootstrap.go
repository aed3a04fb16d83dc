package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-provider/config"
	deliveryHttp "doctor-provider/internal/delivery/http"
	"doctor-provider/internal/delivery/http/handler"
	"doctor-provider/internal/delivery/http/middleware"
	"doctor-provider/internal/infrastructure/cache"
	"doctor-provider/internal/infrastructure/database"
	"doctor-provider/internal/repository"
	"doctor-provider/internal/service"
	"doctor-provider/internal/usecase"
	"doctor-provider/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	location, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", cfg.App.TimeZone, err)
	}

	// Apply schema migrations before opening the pooled connection
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, availability := initializeServer(cfg, db, redisClient, location)
	app.Server = server

	// Rebuild the availability counters so Redis reflects the database
	// after restarts and missed updates.
	if err := availability.SyncAllFromDB(context.Background()); err != nil {
		logrus.Warnf("Failed to sync availability counters: %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, location *time.Location) (*http.Server, *service.AvailabilityService) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	cityRepo := repository.NewCityRepository()
	practiceRepo := repository.NewPracticeRepository()
	specialityRepo := repository.NewSpecialityRepository()
	doctorRepo := repository.NewDoctorRepository()
	workingHoursRepo := repository.NewWorkingHoursRepository()
	slotRepo := repository.NewSlotRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	availability := service.NewAvailabilityService(db, redisClient, log, slotRepo)

	// Initialize usecases
	cityUsecase := usecase.NewCityUsecase(db, log, cityRepo)
	practiceUsecase := usecase.NewPracticeUsecase(db, log, practiceRepo, cityRepo)
	specialityUsecase := usecase.NewSpecialityUsecase(db, log, specialityRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, practiceRepo, specialityRepo)
	workingHoursUsecase := usecase.NewWorkingHoursUsecase(db, log, workingHoursRepo, slotRepo, doctorRepo,
		auditService, availability, cfg.Slots.HorizonWeeks, cfg.Slots.Duration, location)
	slotUsecase := usecase.NewSlotUsecase(db, log, slotRepo, auditService, availability)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	cityHandler := handler.NewCityHandler(cityUsecase)
	practiceHandler := handler.NewPracticeHandler(practiceUsecase, customValidator)
	specialityHandler := handler.NewSpecialityHandler(specialityUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	workingHoursHandler := handler.NewWorkingHoursHandler(workingHoursUsecase, customValidator)
	slotHandler := handler.NewSlotHandler(slotUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(cityHandler, practiceHandler, specialityHandler, doctorHandler,
		workingHoursHandler, slotHandler, auditLogHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, availability
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

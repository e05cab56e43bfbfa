// cmd/fridai-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/DarkestAbed/fridai-backend/internal/api/rest/v1"
	"github.com/DarkestAbed/fridai-backend/internal/app"
	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/notifier"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/scheduler"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/storage"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

// appVersion is reported by the health endpoint.
const appVersion = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *appServices
	scheduler *scheduler.Scheduler
}

type appServices struct {
	task         tasks.TaskService
	relationship tasks.RelationshipService
	category     taxonomy.CategoryService
	tag          taxonomy.TagService
	attachment   attachments.AttachmentService
	view         views.ViewService
	notification notifications.NotificationService
	settings     settings.SettingsService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	taskRepo, err := persistence.NewGormTaskRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}

	relationshipRepo, err := persistence.NewGormRelationshipRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship repository: %w", err)
	}

	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}

	tagRepo, err := persistence.NewGormTagRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag repository: %w", err)
	}

	attachmentRepo, err := persistence.NewGormAttachmentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment repository: %w", err)
	}

	logRepo, err := persistence.NewGormNotificationLogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification log repository: %w", err)
	}

	templateRepo, err := persistence.NewGormTemplateRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create template repository: %w", err)
	}

	settingsRepo, err := persistence.NewGormSettingsRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}

	summaryRepo, err := persistence.NewGormSummaryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary repository: %w", err)
	}

	// Initialize the attachment file store and the notification sender
	fileStore, err := storage.NewLocalFileStore(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	notificationSender, err := notifier.NewShoutrrrNotifier(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	// Initialize services
	settingsCache := settings.NewCache()
	ctx := context.Background()

	settingsService, err := app.NewSettingsService(ctx, settingsRepo, settingsCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	taskService, err := app.NewTaskService(taskRepo, categoryRepo, tagRepo, attachmentRepo, fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	relationshipService, err := app.NewRelationshipService(relationshipRepo, taskRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship service: %w", err)
	}

	categoryService, err := app.NewCategoryService(categoryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	tagService, err := app.NewTagService(tagRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag service: %w", err)
	}

	attachmentService, err := app.NewAttachmentService(attachmentRepo, taskRepo, fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment service: %w", err)
	}

	viewService, err := app.NewViewService(summaryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create view service: %w", err)
	}

	notificationService, err := app.NewNotificationService(taskRepo, logRepo, templateRepo, notificationSender, settingsCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	sched, err := scheduler.NewScheduler(notificationService, settingsCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &appDependencies{
		services: &appServices{
			task:         taskService,
			relationship: relationshipService,
			category:     categoryService,
			tag:          tagService,
			attachment:   attachmentService,
			view:         viewService,
			notification: notificationService,
			settings:     settingsService,
		},
		scheduler: sched,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.task,
		deps.services.relationship,
		deps.services.category,
		deps.services.tag,
		deps.services.attachment,
		deps.services.view,
		deps.services.notification,
		deps.services.settings,
	)

	// Serve uploaded attachment files
	r.Static("/static", cfg.Storage.Path)

	// Health endpoint
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, v1.HealthResponse{OK: true, Version: appVersion})
	})

	// Start the background reminder sweeps
	deps.scheduler.Start()
	defer deps.scheduler.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

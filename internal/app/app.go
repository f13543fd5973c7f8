package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthive_backend/internal/ai"
	"talenthive_backend/internal/auth"
	"talenthive_backend/internal/config"
	"talenthive_backend/internal/email"
	"talenthive_backend/internal/handlers"
	"talenthive_backend/internal/logger"
	"talenthive_backend/internal/middleware"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/internal/routes"
	"talenthive_backend/internal/services"
	"talenthive_backend/internal/storage"
	"talenthive_backend/internal/validator"
	"talenthive_backend/internal/workers"
)

// Run wires the application together and serves until interrupted.
func Run() error {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Hour,
	)

	files, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	svcs, userRepo, err := initializeServices(cfg, db, tokens, files)
	if err != nil {
		return err
	}

	cleanup := workers.NewTokenCleanupWorker(userRepo, time.Hour)
	cleanup.Start()
	defer cleanup.Stop()

	router := initializeGinRouter(cfg)
	appHandlers := initializeHandlers(cfg, svcs)

	uploadsDir := ""
	if local, ok := files.(*storage.LocalStorage); ok {
		uploadsDir = local.BasePath()
	}
	routes.Register(router, appHandlers, tokens, uploadsDir)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func initializeServices(cfg *config.Config, db *gorm.DB, tokens *auth.TokenManager, files storage.Storage) (*services.ServiceContainer, repositories.UserRepository, error) {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, nil, fmt.Errorf("init email templates: %w", err)
	}
	provider := email.NewSMTPProvider(email.Config{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	})
	mailer := email.NewTemplateSender(provider, templates, cfg.ClientURL)

	aiClient := ai.NewClient(cfg.AIService.URL)

	return &services.ServiceContainer{
		Auth:        services.NewAuthService(userRepo, tokens, mailer),
		User:        services.NewUserService(userRepo, files, aiClient),
		Job:         services.NewJobService(jobRepo),
		Application: services.NewApplicationService(applicationRepo, jobRepo, userRepo),
		Matching:    services.NewMatchingService(userRepo, jobRepo, applicationRepo, aiClient),
	}, userRepo, nil
}

func initializeHandlers(cfg *config.Config, svcs *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())
	secureCookies := cfg.Server.Env != "development"

	return &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, svcs.Auth, svcs.User, secureCookies),
		Job:         handlers.NewJobHandler(base, svcs.Job, svcs.Matching),
		Application: handlers.NewApplicationHandler(base, svcs.Application),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.ClientURL))
	return router
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"letify_backend/internal/auth"
	"letify_backend/internal/config"
	"letify_backend/internal/email"
	"letify_backend/internal/handlers"
	"letify_backend/internal/kvstore"
	"letify_backend/internal/logger"
	"letify_backend/internal/middleware"
	"letify_backend/internal/repositories"
	"letify_backend/internal/routes"
	"letify_backend/internal/services"
	"letify_backend/internal/validator"
	"letify_backend/internal/workers"

	"github.com/gin-gonic/gin"
)

// Deps are the external collaborators. Tests pass in-process fakes.
type Deps struct {
	Store     kvstore.Store
	Identity  auth.Provider
	Directory auth.Directory // nil lists users from stored profiles
	Mail      email.Provider
}

// App is a fully wired server.
type App struct {
	Router   *gin.Engine
	Services *services.ServiceContainer
	Mailer   *services.MailDispatcher

	cfg   *config.Config
	store kvstore.Store
}

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := BuildDeps(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize dependencies", "error", err)
	}

	application, err := New(cfg, deps)
	if err != nil {
		logger.Fatal("Failed to build application", "error", err)
	}

	var sweeper *workers.NotificationSweeper
	if cfg.Notifications.RetentionDays > 0 {
		retention := time.Duration(cfg.Notifications.RetentionDays) * 24 * time.Hour
		sweeper = workers.NewNotificationSweeper(application.Services.NotificationService, retention, cfg.Notifications.SweepInterval)
		sweeper.Start(ctx)
		logger.Info("Notification sweeper started", "retention_days", cfg.Notifications.RetentionDays)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address, "prefix", cfg.Server.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if sweeper != nil {
		sweeper.Wait()
	}
	if err := application.Close(shutdownCtx); err != nil {
		logger.Error("Application shutdown incomplete", "error", err)
	}
	logger.Info("Server stopped")
}

// BuildDeps opens the store and builds the identity and email providers from cfg.
func BuildDeps(ctx context.Context, cfg *config.Config) (Deps, error) {
	var deps Deps

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return deps, fmt.Errorf("open %s store: %w", cfg.Store.Type, err)
	}
	deps.Store = store
	logger.Info("Store initialized", "type", cfg.Store.Type)

	switch cfg.Auth.Mode {
	case "remote":
		remote := auth.NewRemoteProvider(cfg.Auth.ProviderURL, cfg.Auth.APIKey, cfg.Auth.ServiceKey, cfg.Auth.Timeout)
		deps.Identity = remote
		deps.Directory = remote
	case "jwt":
		deps.Identity = auth.NewJWTProvider(cfg.Auth.JWTSecret)
	default:
		return deps, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
	logger.Info("Identity provider initialized", "mode", cfg.Auth.Mode)

	switch cfg.Email.Provider {
	case "resend":
		if cfg.Email.APIKey == "" {
			logger.Warn("RESEND_API_KEY is not set, notification emails will fail and be logged")
		}
		deps.Mail = email.NewResendProvider(cfg.Email.BaseURL, cfg.Email.APIKey, cfg.Email.From, cfg.Email.Timeout)
	case "smtp":
		deps.Mail = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTP.Host,
			Port:     cfg.Email.SMTP.Port,
			Username: cfg.Email.SMTP.Username,
			Password: cfg.Email.SMTP.Password,
			From:     cfg.Email.From,
		})
	case "log":
		deps.Mail = email.LogProvider{}
	default:
		return deps, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
	logger.Info("Email provider initialized", "provider", deps.Mail.Name(), "async", cfg.Email.Async)

	return deps, nil
}

// New wires repositories, services and handlers over deps and builds the router.
func New(cfg *config.Config, deps Deps) (*App, error) {
	if len(cfg.Auth.AdminEmails) == 0 {
		logger.Warn("No admin emails configured, every admin route will return 403")
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("load email templates: %w", err)
	}

	repos := repositories.NewContainer(deps.Store)
	mailer := services.NewMailDispatcher(deps.Mail, cfg.Email.Async, cfg.Email.MaxInFlight, cfg.Email.Timeout)
	notifier := services.NewNotifier(repos.Notifications, mailer, templates, cfg.Email.NotifyTo)

	directory := deps.Directory
	if directory == nil {
		directory = services.NewProfileDirectory(repos.Profiles)
	}
	serviceContainer := services.NewServiceContainer(repos, notifier, directory)

	admins := auth.NewAdminList(cfg.Auth.AdminEmails)
	appHandlers := initializeHandlers(serviceContainer, deps.Identity, admins)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, cfg.Server.APIPrefix, appHandlers)

	return &App{
		Router:   ginRouter,
		Services: serviceContainer,
		Mailer:   mailer,
		cfg:      cfg,
		store:    deps.Store,
	}, nil
}

// Close drains queued emails and closes the store.
func (a *App) Close(ctx context.Context) error {
	mailErr := a.Mailer.Close(ctx)
	storeErr := a.store.Close()
	return errors.Join(mailErr, storeErr)
}

func initializeHandlers(s *services.ServiceContainer, identity auth.Provider, admins *auth.AdminList) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New(), identity, admins)

	return &handlers.AppHandlers{
		HealthHandler:       handlers.NewHealthHandler(),
		ContactHandler:      handlers.NewContactHandler(baseHandler, s.ContactService),
		PropertyHandler:     handlers.NewPropertyHandler(baseHandler, s.PropertyService, s.InquiryService),
		BookingHandler:      handlers.NewBookingHandler(baseHandler, s.BookingService),
		RequestHandler:      handlers.NewRequestHandler(baseHandler, s.RequestService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, s.MessageService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, s.NotificationService),
		MailingHandler:      handlers.NewMailingHandler(baseHandler, s.MailingService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, s.ProfileService),
		UserHandler:         handlers.NewUserHandler(baseHandler, s.UserService),
		ExportHandler:       handlers.NewExportHandler(baseHandler, s.ExportService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if !cfg.IsDevelopment() && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge))
	return router
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"refuge-connect/internal/catalog"
	"refuge-connect/internal/config"
	"refuge-connect/internal/helper"
	"refuge-connect/internal/location"
	"refuge-connect/internal/timezone"
	"refuge-connect/internal/translation"
	"refuge-connect/internal/web"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	locationService location.Service
	helperDirectory helper.Directory
	sessions        *translation.Sessions
}

// services are the domain collaborators the handlers call through
type services struct {
	locations  location.Service
	helpers    helper.Directory
	translator translation.Service
}

// NewApp creates a new application wired to the built-in catalog
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	cat := catalog.Default()

	return newApp(cfg, logger, services{
		locations:  location.NewLocationService(cat, tzSvc, logger),
		helpers:    helper.NewDirectory(cat),
		translator: translation.NewMockService(cfg.App.TranslationDelay, logger),
	})
}

func newApp(cfg *config.Config, logger *slog.Logger, svc services) (*App, error) {
	defaultLanguage, err := translation.ParseLanguage(cfg.App.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid default language: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		locationService: svc.locations,
		helperDirectory: svc.helpers,
		sessions:        translation.NewSessions(svc.translator, defaultLanguage, logger),
	}

	// Register routes
	if err := app.registerRoutes(); err != nil {
		return nil, err
	}

	logger.Info("application initialized", "default_language", defaultLanguage)

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	go app.pruneSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		app.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// pruneSessions drops idle assistance sessions until ctx is done
func (app *App) pruneSessions(ctx context.Context) {
	idle := app.cfg.App.SessionIdleTimeout
	if idle <= 0 {
		return
	}

	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.sessions.Prune(idle)
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"triptogether_echo/internal/config"
	"triptogether_echo/internal/content"
	"triptogether_echo/internal/handlers"
	"triptogether_echo/internal/landing"
	appMiddleware "triptogether_echo/internal/middleware"
	"triptogether_echo/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the landing page web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "HTTP port (default from PORT or 8080)")
}

func serve(ctx context.Context, cfg *config.Config) error {
	site, err := content.Load(cfg.Content.File)
	if err != nil {
		return err
	}
	holder := content.NewHolder(site)

	if cfg.Content.Watch && cfg.Content.File != "" {
		if err := holder.Watch(ctx, cfg.Content.File); err != nil {
			return err
		}
		log.WithField("file", cfg.Content.File).Info("Watching content file")
	}

	store, closeStore, err := newStateStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	submitter, err := newContactSubmitter(cfg)
	if err != nil {
		return err
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Middleware
	e.Use(appMiddleware.RequestLogger())
	e.Use(middleware.Recover())

	// Static file serving
	e.Static("/static", "web/static")

	landingHandler := handlers.NewLandingHandler(store, holder, landing.NewPresenter(cfg.Toast.Duration), submitter)
	handlers.RegisterRoutes(e, landingHandler)

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":  cfg.Server.Port,
			"url":   cfg.Server.AppURL,
			"store": cfg.Session.Store,
		}).Info("Server starting")
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newStateStore picks where page sessions live
func newStateStore(cfg *config.Config) (services.StateStore, func(), error) {
	if cfg.Session.Store == config.SessionStoreRedis {
		cache, err := services.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closeFn := func() {
			if err := cache.Close(); err != nil {
				log.WithError(err).Warn("Failed to close redis")
			}
		}
		return services.NewRedisStore(cache, cfg.Session.TTL), closeFn, nil
	}
	return services.NewMemoryStore(cfg.Session.TTL), func() {}, nil
}

// newContactSubmitter picks the contact form collaborator
func newContactSubmitter(cfg *config.Config) (landing.ContactSubmitter, error) {
	if cfg.Contact.Sink != config.ContactSinkDatabase {
		return landing.AcceptAll, nil
	}

	db, err := services.InitDB(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	if err := services.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	log.Info("Contact submissions are recorded in the database")
	return services.NewLeadInbox(db), nil
}

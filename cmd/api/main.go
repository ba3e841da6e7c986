// Package main is the entry point for the holiday API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/holiday-api/internal/api"
	"github.com/zapponejosh/holiday-api/internal/config"
	"github.com/zapponejosh/holiday-api/internal/database"
	"github.com/zapponejosh/holiday-api/internal/dataset"
	"github.com/zapponejosh/holiday-api/internal/holiday"
	"github.com/zapponejosh/holiday-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting holiday API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Rules come either from SQLite (imported CSV data) or from the
	// compiled-in dataset.
	registry, db, err := loadRegistry(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	log.Info("holiday registry ready",
		slog.Int("countries", registry.Len()),
		slog.Bool("from_database", db != nil),
	)

	querier := holiday.NewCachedQuerier(
		holiday.NewQuerierWithRange(registry, cfg.YearMin, cfg.YearMax),
	)

	handlers := api.NewHandlers(querier, cfg, log)
	if db != nil {
		handlers.HealthCheckFn = db.Health
	}

	router := api.SetupRoutes(handlers, cfg, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain connections
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// loadRegistry picks the rule source. With DATABASE_PATH set the SQLite
// store is authoritative; otherwise the compiled-in dataset serves.
func loadRegistry(ctx context.Context, cfg *config.Config, log *slog.Logger) (*holiday.Registry, *database.DB, error) {
	if cfg.DatabasePath == "" {
		return dataset.Default(), nil, nil
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return nil, nil, fmt.Errorf("open rule database: %w", err)
	}

	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate rule database: %w", err)
	}

	registry, err := db.LoadRegistry(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load rules: %w", err)
	}

	return registry, db, nil
}

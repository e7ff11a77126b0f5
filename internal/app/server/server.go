package server

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

	"hirequality/internal/domain/hires"
	"hirequality/internal/platform/config"
	"hirequality/internal/platform/db"
	"hirequality/internal/platform/logging"
	"hirequality/internal/platform/metrics"
)

const serviceName = "hirequality"

// Run loads configuration, opens the configured store and serves until
// SIGINT or SIGTERM.
func Run() error {
	cfg := config.Load()
	logger := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.RunSeed {
		if _, err := db.Seed(ctx, store, cfg.SeedRandom); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	collector := metrics.New()
	limiter := newLimiter(cfg)
	go limiter.Run(ctx.Done(), time.Minute)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(Deps{Config: cfg, Store: store, Metrics: collector, Logger: logger, Limiter: limiter}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("hire quality server listening", "addr", cfg.Addr, "store", cfg.StoreBackend, "auth", cfg.JWTSecret != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the configured hire store and a function releasing it.
func openStore(ctx context.Context, cfg config.Config) (hires.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if cfg.RunMigrations {
			if err := db.MigratePostgres(cfg.DatabaseURL); err != nil {
				return nil, nil, fmt.Errorf("migrations failed: %w", err)
			}
		}
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect failed: %w", err)
		}
		return db.NewPostgresStore(pool), pool.Close, nil
	case config.BackendSQLite:
		store, err := db.OpenSQLite(ctx, cfg.SQLitePath, cfg.RunMigrations)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("sqlite close failed", "err", err)
			}
		}, nil
	default:
		return hires.NewMemoryStore(), func() {}, nil
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/club-registry/internal/app"
	"github.com/riskibarqy/club-registry/internal/config"
	"github.com/riskibarqy/club-registry/internal/observability"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

func main() {
	// A missing .env is fine, real environments inject variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("service exited with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Components register their cleanup as they start, so a failed startup
	// still stops whatever was already running.
	var cleanups []func(context.Context) error
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		stopComponents(shutdownCtx, logger, cleanups)
	}()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	cleanups = append(cleanups, shutdownUptrace)

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	cleanups = append(cleanups, func(context.Context) error { return stopPyroscope() })

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("start pprof: %w", err)
	}
	cleanups = append(cleanups, func(ctx context.Context) error {
		return observability.StopPprofServer(ctx, pprofSrv, logger)
	})

	srv, closeStorage, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	cleanups = append(cleanups, func(context.Context) error { return closeStorage() })

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "storage_backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// The HTTP server drains before the deferred cleanups so in-flight
	// requests can still reach storage.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	} else {
		logger.Info("http server stopped")
	}

	return runErr
}

func stopComponents(ctx context.Context, logger *logging.Logger, cleanups []func(context.Context) error) {
	if len(cleanups) == 0 {
		return
	}

	p := pool.New().WithErrors()
	for _, cleanup := range cleanups {
		p.Go(func() error { return cleanup(ctx) })
	}
	if err := p.Wait(); err != nil {
		logger.Error("shutdown cleanup failed", "error", err)
	}
}

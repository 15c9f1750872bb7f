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

	"github.com/PedroCamargo-dev/transfers-client/internal/adapter/repository/memory"
	"github.com/PedroCamargo-dev/transfers-client/internal/adapter/sandbox"
	"github.com/PedroCamargo-dev/transfers-client/internal/config"
	impl_platform "github.com/PedroCamargo-dev/transfers-client/internal/impl/platform"
	"github.com/PedroCamargo-dev/transfers-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("sandbox exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(nil)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(os.Stderr, logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Prefix:     cfg.Log.Prefix,
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	svc := sandbox.NewService(
		memory.NewTransferRepository(),
		impl_platform.SystemClock{},
		impl_platform.UUIDGenerator{},
		log,
	)

	srv := &http.Server{
		Addr:              cfg.Sandbox.Addr,
		Handler:           sandbox.NewRouter(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("sandbox listening", "addr", cfg.Sandbox.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("sandbox server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sandbox shutdown failed: %w", err)
	}

	log.Info("sandbox stopped")
	return nil
}

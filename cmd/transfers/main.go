package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroCamargo-dev/transfers-client/internal/adapter/httpclient"
	"github.com/PedroCamargo-dev/transfers-client/internal/config"
	impl_transfer "github.com/PedroCamargo-dev/transfers-client/internal/impl/usecase/transfer"
	"github.com/PedroCamargo-dev/transfers-client/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	log, err := logger.New(stderr, logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Prefix:     cfg.Log.Prefix,
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitUsage
	}

	requester, err := httpclient.New(httpclient.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		Headers:        cfg.API.Headers,
		SnakeCaseQuery: cfg.API.SnakeCaseQuery,
	}, log)
	if err != nil {
		fmt.Fprintf(stderr, "requester: %v\n", err)
		return exitUsage
	}

	c := &cli{
		ops:    impl_transfer.NewTransferOperationsImpl(requester, log),
		stdout: stdout,
		stderr: stderr,
	}

	return c.dispatch(ctx, args)
}

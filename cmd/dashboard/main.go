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

	"github.com/couchcryptid/uninsured-dashboard/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/uninsured-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/uninsured-dashboard/internal/config"
	"github.com/couchcryptid/uninsured-dashboard/internal/dashboard"
	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	"github.com/couchcryptid/uninsured-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, metrics); err != nil {
		logger.Error("dashboard exited", "error", err)
		stop()
		os.Exit(1)
	}
}

// run serves the dashboard until ctx is cancelled. A table that fails to
// load is returned before any listener is opened.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	records, err := domain.Load(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("load data table: %w", err)
	}
	logger.Info("data table loaded", "path", cfg.DataPath, "records", records.Len())

	variant, err := dashboard.LookupVariant(cfg.Variant)
	if err != nil {
		return err
	}

	// Interaction stream (feature-flagged via KAFKA_ENABLED).
	var writer *kafkaadapter.Writer
	opts := dashboard.Options{
		Variant:       variant,
		EchoSelection: cfg.EchoSelection,
		Clock:         clockwork.NewRealClock(),
	}
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts.Publisher = writer
		logger.Info("interaction stream enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("interaction stream disabled")
	}

	dash, err := dashboard.New(records, opts, logger, metrics)
	if err != nil {
		return fmt.Errorf("build dashboard: %w", err)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, dash, logger)

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancel(fmt.Errorf("http server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")

	if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

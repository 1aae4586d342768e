// Command fittracker computes workout summaries for the built-in sample
// sensor packages and prints one line per workout to stdout.
//
// Packages that cannot be computed are skipped and logged; the process
// then exits with status 1.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/fitness-tracker/internal/adapter/console"
	"github.com/couchcryptid/fitness-tracker/internal/adapter/sample"
	"github.com/couchcryptid/fitness-tracker/internal/config"
	"github.com/couchcryptid/fitness-tracker/internal/observability"
	"github.com/couchcryptid/fitness-tracker/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(stderr, nil)).Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(stderr, cfg)
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	source := sample.NewSource(sample.Packages())
	writer := console.NewWriter(stdout, logger)
	transformer := pipeline.NewTransformer(logger)

	p := pipeline.New(source, transformer, writer, logger, metrics, cfg.BatchSize)

	err = p.Run(ctx)
	observability.LogRunSummary(context.WithoutCancel(ctx), logger, reg)
	if err != nil {
		logger.Error("pipeline error", "error", err)
		return 1
	}
	return 0
}

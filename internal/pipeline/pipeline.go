package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/fitness-tracker/internal/domain"
	"github.com/couchcryptid/fitness-tracker/internal/observability"
)

// BatchExtractor reads up to batchSize sensor packages from the source.
// An empty batch means the source is drained.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.Package, error)
}

// Transformer converts a sensor package into a measurement.
type Transformer interface {
	Transform(ctx context.Context, pkg domain.Package) (domain.Measurement, error)
}

// BatchLoader writes measurements to the destination, preserving order.
type BatchLoader interface {
	LoadBatch(ctx context.Context, measurements []domain.Measurement) error
}

// Pipeline runs the extract-transform-load loop over a finite source.
//
// A package that fails to transform is logged, counted and skipped; the
// remaining packages are still processed. Run reports every skipped package
// in its returned error once the source is drained.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// Run processes packages until the source is drained or the context is cancelled.
// Extract and load failures abort the run; transform failures are collected and
// returned joined after the last batch.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	var (
		failures []error
		position int
	)
	for {
		if err := ctx.Err(); err != nil {
			p.logger.Info("pipeline stopping", "reason", err)
			return errors.Join(append(failures, err)...)
		}

		n, batchFailures, err := p.processBatch(ctx, position)
		failures = append(failures, batchFailures...)
		if err != nil {
			return errors.Join(append(failures, err)...)
		}
		if n == 0 {
			break
		}
		position += n
	}

	p.logger.Info("pipeline finished", "packages", position, "failed", len(failures))
	return errors.Join(failures...)
}

// processBatch runs one extract-transform-load cycle. It returns the number
// of packages extracted, the per-package transform failures, and a fatal error.
func (p *Pipeline) processBatch(ctx context.Context, position int) (int, []error, error) {
	start := clock.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("extract batch failed", "error", err)
		return 0, nil, fmt.Errorf("extract batch: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil, nil
	}

	p.metrics.PackagesConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))

	out := make([]domain.Measurement, 0, len(batch))
	var failures []error
	for i, pkg := range batch {
		m, err := p.transformer.Transform(ctx, pkg)
		if err != nil {
			p.logger.Warn("transform failed, skipping package",
				"error", err,
				"position", position+i,
				"code", pkg.Code,
				"reading_id", pkg.ID(),
			)
			p.metrics.TransformErrors.WithLabelValues(errorReason(err)).Inc()
			failures = append(failures, fmt.Errorf("package %d (%s): %w", position+i, pkg.Code, err))
			continue
		}
		out = append(out, m)
	}

	if len(out) > 0 {
		if err := p.loader.LoadBatch(ctx, out); err != nil {
			p.logger.Error("load batch failed", "error", err, "batch_size", len(out))
			return len(batch), failures, fmt.Errorf("load batch: %w", err)
		}
		p.metrics.SummariesProduced.Add(float64(len(out)))
	}

	p.metrics.BatchProcessingDuration.Observe(clock.Since(start).Seconds())
	return len(batch), failures, nil
}

// errorReason maps a domain error to its transform_errors_total label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownActivity):
		return "unknown_activity"
	case errors.Is(err, domain.ErrArgumentCount):
		return "argument_count"
	case errors.Is(err, domain.ErrDivisionByZero):
		return "division_by_zero"
	default:
		return "other"
	}
}

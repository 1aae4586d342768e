// Package console prints workout summaries, one line per measurement.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/fitness-tracker/internal/domain"
)

// Writer renders measurements to an io.Writer.
// It implements pipeline.BatchLoader.
type Writer struct {
	out    io.Writer
	logger *slog.Logger
}

// NewWriter creates a Writer printing to out.
func NewWriter(out io.Writer, logger *slog.Logger) *Writer {
	return &Writer{out: out, logger: logger}
}

// LoadBatch renders and prints each measurement in order.
func (w *Writer) LoadBatch(ctx context.Context, measurements []domain.Measurement) error {
	for i := range measurements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w.out, measurements[i].Message()); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	w.logger.Debug("summaries written", "count", len(measurements))
	return nil
}

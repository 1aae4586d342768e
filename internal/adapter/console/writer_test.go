package console

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/couchcryptid/fitness-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_LoadBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, slog.Default())

	batch := []domain.Measurement{
		{Label: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
		{Label: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 797.805},
	}
	require.NoError(t, w.LoadBatch(context.Background(), batch))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, batch[0].Message(), lines[0])
	assert.Equal(t, batch[1].Message(), lines[1])
}

func TestWriter_LoadBatch_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, slog.Default()).LoadBatch(context.Background(), nil))
	assert.Empty(t, buf.String())
}

func TestWriter_LoadBatch_WriteError(t *testing.T) {
	w := NewWriter(failingWriter{}, slog.Default())
	err := w.LoadBatch(context.Background(), []domain.Measurement{{Label: "Running"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write summary")
}

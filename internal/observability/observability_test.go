package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/couchcryptid/fitness-tracker/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})

	logger.Info("package processed", "reading_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "package processed", entry["msg"])
	assert.Equal(t, "abc", entry["reading_id"])
}

func TestNewLogger_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "warn", LogFormat: "text"})

	logger.Info("hidden")
	logger.Warn("shown", "code", "XYZ")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "code=XYZ")
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := NewLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})
	assert.Same(t, logger, slog.Default())

	slog.Info("via default")
	assert.Contains(t, buf.String(), `"msg":"via default"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.PackagesConsumed.Add(3)
	m.TransformErrors.WithLabelValues("unknown_activity").Inc()

	assert.InDelta(t, 3.0, testutil.ToFloat64(m.PackagesConsumed), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.TransformErrors.WithLabelValues("unknown_activity")), 0)

	count, err := testutil.GatherAndCount(reg, "fitness_tracker_packages_consumed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Panics(t, func() { NewMetrics(reg) }, "second registration must collide")
}

func TestLogRunSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.PackagesConsumed.Add(4)
	m.SummariesProduced.Add(2)
	m.TransformErrors.WithLabelValues("unknown_activity").Inc()
	m.TransformErrors.WithLabelValues("division_by_zero").Inc()
	m.PipelineRunning.Set(1)
	m.BatchProcessingDuration.Observe(0.25)
	m.BatchProcessingDuration.Observe(0.5)

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})
	LogRunSummary(context.Background(), logger, reg)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run summary", entry["msg"])
	assert.InDelta(t, 4.0, entry["packages_consumed_total"], 0)
	assert.InDelta(t, 2.0, entry["summaries_produced_total"], 0)
	assert.InDelta(t, 2.0, entry["batch_processing_duration_seconds_count"], 0)
	assert.InDelta(t, 0.75, entry["batch_processing_duration_seconds_sum"], 1e-9)
	assert.NotContains(t, entry, "pipeline_running")

	errs, ok := entry["transform_errors_total"].(map[string]any)
	require.True(t, ok, "transform errors must be grouped by reason")
	assert.Equal(t, map[string]any{"unknown_activity": 1.0, "division_by_zero": 1.0}, errs)
}

func TestLogRunSummary_BelowLevel(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg).PackagesConsumed.Inc()

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "warn", LogFormat: "json"})
	LogRunSummary(context.Background(), logger, reg)

	assert.Empty(t, buf.String())
}

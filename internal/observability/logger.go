package observability

import (
	"io"
	"log/slog"

	"github.com/couchcryptid/fitness-tracker/internal/config"
)

// NewLogger creates a structured logger writing to w and sets it as the slog
// default. The command passes stderr; stdout is reserved for summary lines.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	logger := newLogger(w, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// parseLevel converts a log level name to slog.Level. Unknown names map to info.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"quirknotes/internal/config"
)

var (
	singleton *slog.Logger
	once      sync.Once
)

// Init initializes the singleton logger from the provided config.
// It is thread-safe and idempotent - the first successful call wins,
// and subsequent calls return the same logger instance.
func Init(cfg config.Config) (*slog.Logger, error) {
	once.Do(func() {
		singleton = slog.New(newHandler(os.Stdout, cfg))
	})

	return singleton, nil
}

// L returns the singleton logger instance.
// Before Init it falls back to slog.Default so early callers never get nil.
func L() *slog.Logger {
	if singleton == nil {
		return slog.Default()
	}
	return singleton
}

// parseLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newHandler builds the slog handler selected by LOG_FORMAT (json unless "text").
func newHandler(w io.Writer, cfg config.Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}

	switch cfg.LogFormat {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "json":
		fallthrough
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

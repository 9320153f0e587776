// Package logging wraps log/slog with the level and format selection used by
// the orbitsim commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that sets the default log level.
const EnvLevel = "ORBITSIM_LOG_LEVEL"

// Logger wraps slog.Logger so packages can share one handler.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "json" or "text"; anything
// else falls back to text.
func New(w io.Writer, level slog.Level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{slog.New(handler)}
}

// NewFromEnv creates a text Logger on stderr at the level named by
// ORBITSIM_LOG_LEVEL.
func NewFromEnv() *Logger {
	return New(os.Stderr, LevelFromEnv(EnvLevel), "text")
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

// ParseLevel maps a level name to a slog.Level. Unknown names are INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LevelFromEnv(key string) slog.Level {
	return ParseLevel(os.Getenv(key))
}

// WrapError adds context to err, preserving it for errors.Is.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}

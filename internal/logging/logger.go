// Package logging wraps log/slog with the demo driver's field names.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with dynbitset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithScenario adds a scenario field to the logger.
func (l *Logger) WithScenario(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("scenario", name),
	}
}

// LogScenario logs the outcome of a single scenario.
func (l *Logger) LogScenario(ctx context.Context, name string, lines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scenario failed",
			"scenario", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scenario completed",
			"scenario", name,
			"lines", lines,
		)
	}
}

// LogRun logs the outcome of a whole driver run.
func (l *Logger) LogRun(ctx context.Context, out string, scenarios int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"out", out,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"out", out,
			"scenarios", scenarios,
			"elapsed", elapsed,
		)
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

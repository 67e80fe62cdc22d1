package rtc

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/rtc/tuple"
)

// Logger wraps slog.Logger with simulation-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRun adds a run ID field to the logger (useful for telling sweep runs apart).
func (l *Logger) WithRun(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", id),
	}
}

// LogTick logs a single simulation step.
func (l *Logger) LogTick(ctx context.Context, tick int, position, velocity tuple.Tuple) {
	l.DebugContext(ctx, "tick",
		"tick", tick,
		"position", position.String(),
		"velocity", velocity.String(),
	)
}

// LogLanding logs the end of a simulation.
func (l *Logger) LogLanding(ctx context.Context, ticks int, position tuple.Tuple, err error) {
	if err != nil {
		l.ErrorContext(ctx, "simulation failed",
			"ticks", ticks,
			"position", position.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "projectile landed",
			"ticks", ticks,
			"position", position.String(),
		)
	}
}

// LogSweep logs a batch of concurrent simulations.
func (l *Logger) LogSweep(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "sweep completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"count", count,
		)
	}
}

// LogExport logs a trajectory export.
func (l *Logger) LogExport(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "trajectory exported",
			"name", name,
			"bytes", size,
		)
	}
}

package kdgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdgo-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index construction.
func (l *Logger) LogBuild(ctx context.Context, count, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"count", count,
			"dimension", dimension,
		)
	}
}

// LogSearch logs a nearest-neighbor query.
func (l *Logger) LogSearch(ctx context.Context, visited int, found bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"visited", visited,
			"found", found,
		)
	}
}

// LogBatchSearch logs a batch of nearest-neighbor queries.
func (l *Logger) LogBatchSearch(ctx context.Context, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch search aborted",
			"total", count,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "batch search completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	default:
		l.DebugContext(ctx, "batch search completed",
			"count", count,
		)
	}
}

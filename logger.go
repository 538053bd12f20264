package colmem

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colmem-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// LogColumnAdded logs the registration of a column.
func (l *Logger) LogColumnAdded(name, kind string, err error) {
	if err != nil {
		l.Error("add column failed",
			"column", name,
			"kind", kind,
			"error", err,
		)
		return
	}
	l.Debug("column added",
		"column", name,
		"kind", kind,
	)
}

// LogBudgetExceeded logs that a group reached its memory budget.
func (l *Logger) LogBudgetExceeded(used, limit int64) {
	l.Warn("memory budget exhausted",
		"used_bytes", used,
		"limit_bytes", limit,
	)
}

// LogCompression logs a compression of column data.
func (l *Logger) LogCompression(codec string, in, out int, err error) {
	if err != nil {
		l.Error("compression failed",
			"codec", codec,
			"bytes_in", in,
			"error", err,
		)
		return
	}
	l.Debug("compression completed",
		"codec", codec,
		"bytes_in", in,
		"bytes_out", out,
	)
}

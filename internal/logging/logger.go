// Package logging wraps slog.Logger with conversion-specific helpers so
// that every component logs with the same field names.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with converter-specific context.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// WithRequest tags the logger with a request ID.
func (l *Logger) WithRequest(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("request", id),
	}
}

// LogCollection logs the conversion of one source collection.
func (l *Logger) LogCollection(kind, collection string, converted int) {
	l.Debug("collection converted",
		"kind", kind,
		"collection", collection,
		"count", converted,
	)
}

// LogUnrecognized logs a request triple whose entity type is unknown.
func (l *Logger) LogUnrecognized(entityType, collection, suggestion string) {
	if suggestion != "" {
		l.Error("error trying to convert requested collection",
			"type", entityType,
			"collection", collection,
			"suggestion", suggestion,
		)

		return
	}

	l.Error("error trying to convert requested collection",
		"type", entityType,
		"collection", collection,
	)
}

// LogMissingCollection logs a source collection the provider cannot supply.
func (l *Logger) LogMissingCollection(kind, collection string, err error) {
	l.Error("source collection unavailable",
		"kind", kind,
		"collection", collection,
		"error", err,
	)
}

// LogUnresolved logs a reference that found no converted counterpart.
func (l *Logger) LogUnresolved(kind, ref string) {
	l.Debug("reference left unlinked",
		"kind", kind,
		"ref", ref,
	)
}

// LogRegistration logs the hand-over of the assembled event to the store.
func (l *Logger) LogRegistration(key string, err error) {
	if err != nil {
		l.Error("failed to store the converted event",
			"key", key,
			"error", err,
		)

		return
	}

	l.Info("registered converted event",
		"key", key,
	)
}

// Package logger wraps slog behind a small interface so handlers and
// services can log without caring about handler setup, and so error logging
// distinguishes expected domain failures from infrastructure ones.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog.LevelError for failures the process cannot
// recover from, such as a failed startup.
const LevelCritical = slog.Level(12)

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)

	// BusinessError logs an expected domain failure (a wrong PIN, a
	// duplicate user id) at warn level. InternalError logs an
	// infrastructure failure (database, I/O) at error level. Both are
	// no-ops on a nil error.
	BusinessError(message string, err error, args ...any)
	InternalError(message string, err error, args ...any)

	With(args ...any) Logger
}

type slogAdapter struct {
	base *slog.Logger
}

// NewFromEnv builds a logger from ENV, LOG_LEVEL and LOG_FORMAT. Development
// defaults to debug-level text output, everything else to info-level JSON.
func NewFromEnv() Logger {
	env := normalize(os.Getenv("ENV"))
	dev := env == "development"
	return New(os.Stdout, levelFromEnv(os.Getenv("LOG_LEVEL"), dev), formatFromEnv(os.Getenv("LOG_FORMAT"), dev))
}

func New(output io.Writer, level slog.Level, format string) Logger {
	options := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameCriticalLevel,
	}

	var handler slog.Handler
	if normalize(format) == "text" {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}

	return &slogAdapter{base: slog.New(handler)}
}

func (l *slogAdapter) Debug(message string, args ...any) { l.base.Debug(message, args...) }
func (l *slogAdapter) Info(message string, args ...any)  { l.base.Info(message, args...) }
func (l *slogAdapter) Warn(message string, args ...any)  { l.base.Warn(message, args...) }
func (l *slogAdapter) Error(message string, args ...any) { l.base.Error(message, args...) }

func (l *slogAdapter) Critical(message string, args ...any) {
	l.base.Log(context.Background(), LevelCritical, message, args...)
}

func (l *slogAdapter) BusinessError(message string, err error, args ...any) {
	if err == nil {
		return
	}
	l.base.Warn(message, append([]any{"err", err}, args...)...)
}

func (l *slogAdapter) InternalError(message string, err error, args ...any) {
	if err == nil {
		return
	}
	l.base.Error(message, append([]any{"err", err}, args...)...)
}

func (l *slogAdapter) With(args ...any) Logger {
	return &slogAdapter{base: l.base.With(args...)}
}

func levelFromEnv(value string, dev bool) slog.Level {
	switch normalize(value) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return LevelCritical
	}
	if dev {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func formatFromEnv(value string, dev bool) string {
	switch normalize(value) {
	case "json", "text":
		return normalize(value)
	}
	if dev {
		return "text"
	}
	return "json"
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func renameCriticalLevel(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}

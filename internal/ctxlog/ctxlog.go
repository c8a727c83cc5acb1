// Package ctxlog builds the launcher's slog.Logger and carries it through
// context.Context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables that configure the logger.
const (
	EnvLevel  = "LAUNCHPAD_LOG_LEVEL"
	EnvFormat = "LAUNCHPAD_LOG_FORMAT"
)

type key struct{}

type levelKey struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}

// WithLevel returns a new context carrying the logger's level variable.
func WithLevel(ctx context.Context, level *slog.LevelVar) context.Context {
	return context.WithValue(ctx, levelKey{}, level)
}

// EnableDebug lowers the level carried by ctx to debug and reports whether
// ctx carried one.
func EnableDebug(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	level, ok := ctx.Value(levelKey{}).(*slog.LevelVar)
	if !ok || level == nil {
		return false
	}
	if level.Level() > slog.LevelDebug {
		level.Set(slog.LevelDebug)
	}
	return true
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level. Anything
// else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New creates a logger writing to w. format "json" selects the JSON
// handler, anything else the text handler. The level is a LevelVar so
// callers can raise verbosity once configuration has been read.
func New(w io.Writer, level *slog.LevelVar, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromEnv builds a stderr logger from LAUNCHPAD_LOG_LEVEL and
// LAUNCHPAD_LOG_FORMAT and returns it with its level variable.
func FromEnv(getenv func(string) string) (*slog.Logger, *slog.LevelVar) {
	if getenv == nil {
		getenv = os.Getenv
	}
	level := new(slog.LevelVar)
	level.Set(ParseLevel(getenv(EnvLevel)))
	return New(os.Stderr, level, getenv(EnvFormat)), level
}

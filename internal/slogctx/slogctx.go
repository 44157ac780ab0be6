// Package slogctx provides a minimal mechanism for passing a [slog.Logger]
// around in contexts.
package slogctx

import (
	"context"
	"log/slog"
)

type ctxKey int

const slogCtxKey ctxKey = iota

// New creates a new child [context.Context] containing the given [slog.Logger]
func New(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, slogCtxKey, logger)
}

// With creates a new child [context.Context] whose logger carries the given
// attributes.
func With(ctx context.Context, args ...any) context.Context {
	return New(ctx, From(ctx).With(args...))
}

// From returns the [slog.Logger] from the given [context.Context], or the
// default logger if not found.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(slogCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelDebug, msg, args...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelWarn, msg, args...)
}

func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	From(ctx).Log(ctx, level, msg, args...)
}

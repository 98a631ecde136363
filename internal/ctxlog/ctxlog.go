// Package ctxlog carries the run's slog.Logger through context.Context so
// every pipeline stage logs through the logger configured for that run.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithStage returns a context whose logger tags every record with the
// pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("stage", stage))
}

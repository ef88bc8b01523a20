// Package tlog carries zap loggers in contexts.
//
// The data-structure packages of this module never log; only bulk
// operations at the frame layer take a context and report debug summaries
// through the logger found in it. A context without a logger gets a no-op
// logger, so plain context.Background works everywhere.
package tlog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey int

const tlogKey contextKey = iota

// Get returns the logger carried by ctx, or a no-op logger if there is
// none.
func Get(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(tlogKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithLogger adds a logger to a context or replaces an existing one.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, tlogKey, logger)
}

// With returns a context whose logger is extended with the given fields.
func With(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

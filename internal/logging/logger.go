// Package logging defines the small structured-logging interface the rest of
// the application depends on. The concrete implementation wraps log/slog, but
// nothing outside this package needs to know that.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "http server listening", "addr", addr)
type Logger interface {
	// Debug logs fine-grained diagnostic detail, e.g. which token-validation
	// sub-kind was rejected. Never shown to API callers.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

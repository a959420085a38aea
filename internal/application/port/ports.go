// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what checkout needs from the outside world: logging, metrics,
// tracing, and the stock and payment services.
//
// Adapters living under internal/infrastructure implement them; tests
// substitute mocks.
package port

import (
	"context"
	"time"
)

// Logger is the structured logger checkout writes to.
//
// Example usage:
//
//	log.Info("Purchase completed", "cart_id", cartID, "transaction_id", txID)
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a logger that adds the given fields to every entry.
	With(keysAndValues ...any) Logger

	// WithContext returns a logger carrying the request ID found in ctx.
	WithContext(ctx context.Context) Logger
}

// Metrics records checkout outcomes and latencies.
// Tag keys must be the same for every call with a given name.
type Metrics interface {
	Counter(name string, value float64, tags map[string]string)
	Histogram(name string, value float64, tags map[string]string)
	Timing(name string, duration time.Duration, tags map[string]string)
}

// Tracer opens spans around checkout steps.
type Tracer interface {
	// StartSpan starts a child of the span found in ctx, if any.
	// The returned span must be ended by the caller.
	StartSpan(ctx context.Context, operationName string) (context.Context, Span)
}

// Span is one traced step.
type Span interface {
	End()
	SetAttribute(key string, value any)

	// SetError records err and marks the span as failed.
	SetError(err error)
}

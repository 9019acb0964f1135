package observe

import (
	"context"
	"time"
)

// LookupFunc is the signature for instrumented secret lookups. It returns
// the looked-up value, whether it was found, and any backend error.
type LookupFunc func(ctx context.Context, meta LookupMeta, key string) (string, bool, error)

// Middleware wraps secret lookups with observability (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe LookupFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
//   - Secrecy: The looked-up value is never logged, traced, or recorded.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a LookupFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn LookupFunc) LookupFunc {
	return func(ctx context.Context, meta LookupMeta, key string) (string, bool, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		value, found, err := fn(ctx, meta, key)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordLookup(ctx, meta, duration, found, err)

		storeLogger := m.logger.WithStore(meta.Store)
		fields := []Field{
			{Key: "op", Value: meta.Op},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			{Key: "found", Value: found},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			storeLogger.Error(ctx, "secret lookup failed", fields...)
		} else {
			storeLogger.Debug(ctx, "secret lookup completed", fields...)
		}

		return value, found, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	tracer := newTracer(obs.Tracer())

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}

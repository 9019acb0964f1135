package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records secret lookup metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordLookup records a secret lookup with duration, hit status, and
	// error status. Keys and values are never recorded.
	RecordLookup(ctx context.Context, meta LookupMeta, duration time.Duration, found bool, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	missCount    metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"secret.lookup.total",
		metric.WithDescription("Total number of secret lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"secret.lookup.misses",
		metric.WithDescription("Total number of secret lookups that found nothing"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"secret.lookup.errors",
		metric.WithDescription("Total number of secret lookup errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"secret.lookup.duration_ms",
		metric.WithDescription("Secret lookup duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		missCount:    missCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordLookup records metrics for a secret lookup.
func (m *metricsImpl) RecordLookup(ctx context.Context, meta LookupMeta, duration time.Duration, found bool, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("secret.store", meta.Store),
		attribute.String("secret.op", meta.Op),
	}
	if meta.Provider != "" {
		attrs = append(attrs, attribute.String("secret.provider", meta.Provider))
	}

	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if !found && err == nil {
		m.missCount.Add(ctx, 1, opt)
	}
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics { return &noopMetrics{} }

func (m *noopMetrics) RecordLookup(ctx context.Context, meta LookupMeta, duration time.Duration, found bool, err error) {
}

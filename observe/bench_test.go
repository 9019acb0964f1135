package observe

import (
	"context"
	"io"
	"testing"
	"time"
)

// BenchmarkLogger_Info measures logging throughput.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", Field{Key: "iteration", Value: i})
	}
}

// BenchmarkLogger_Info_MultipleFields measures logging with multiple fields.
func BenchmarkLogger_Info_MultipleFields(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()
	fields := []Field{
		{Key: "provider", Value: "openai"},
		{Key: "source", Value: "env"},
		{Key: "found", Value: true},
		{Key: "duration_ms", Value: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", fields...)
	}
}

// BenchmarkLogger_WithStore measures creating store-scoped loggers.
func BenchmarkLogger_WithStore(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.WithStore("vault")
	}
}

// BenchmarkLogger_Filtered measures the cost of a filtered-out log call.
func BenchmarkLogger_Filtered(b *testing.B) {
	logger := NewLoggerWithWriter("warn", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "filtered message", Field{Key: "iteration", Value: i})
	}
}

// BenchmarkMetrics_RecordLookup measures metric recording throughput.
func BenchmarkMetrics_RecordLookup(b *testing.B) {
	metrics := NewNoopMetrics()
	ctx := context.Background()
	meta := LookupMeta{Store: "memory", Op: "get"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		metrics.RecordLookup(ctx, meta, time.Millisecond, true, nil)
	}
}

// BenchmarkMiddleware_Wrap measures the overhead of a wrapped lookup.
func BenchmarkMiddleware_Wrap(b *testing.B) {
	mw := NewMiddleware(NewNoopTracer(), NewNoopMetrics(), &noopLogger{})
	meta := LookupMeta{Store: "memory", Op: "get"}

	wrapped := mw.Wrap(func(ctx context.Context, meta LookupMeta, key string) (string, bool, error) {
		return "v", true, nil
	})

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = wrapped(ctx, meta, "openai")
	}
}

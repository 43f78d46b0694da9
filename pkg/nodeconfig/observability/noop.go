package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordConfigBuild does nothing.
func (NoopMetrics) RecordConfigBuild(_ context.Context) {}

// RecordNodeCreated does nothing.
func (NoopMetrics) RecordNodeCreated(_ context.Context, _ string) {}

// RecordInternalNodeCreated does nothing.
func (NoopMetrics) RecordInternalNodeCreated(_ context.Context, _ bool) {}

// RecordPoolAcquire does nothing.
func (NoopMetrics) RecordPoolAcquire(_ context.Context, _ bool) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartPrewarmSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartPrewarmSpan(ctx context.Context, _ int) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}

package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Node creation sources reported by RecordNodeCreated.
const (
	// SourceDefault is a node built by the default constructor with no factory installed.
	SourceDefault = "default"
	// SourceFactory is a node produced by an installed factory.
	SourceFactory = "factory"
	// SourceFallback is a default node built after the installed factory deferred.
	SourceFallback = "fallback"
)

// MetricsRecorder records nodeconfig metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConfigBuild records construction of an engine config.
	RecordConfigBuild(ctx context.Context)

	// RecordNodeCreated records a layout node creation by source.
	RecordNodeCreated(ctx context.Context, source string)

	// RecordInternalNodeCreated records an internal node creation.
	RecordInternalNodeCreated(ctx context.Context, custom bool)

	// RecordPoolAcquire records an internal node pool acquire.
	RecordPoolAcquire(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	configBuilds  metric.Int64Counter
	nodes         metric.Int64Counter
	internalNodes metric.Int64Counter
	poolAcquires  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("nodeconfig")

	configBuilds, err := meter.Int64Counter("nodeconfig.engine_config.builds",
		metric.WithDescription("Number of engine configs built"),
	)
	if err != nil {
		return nil, err
	}

	nodes, err := meter.Int64Counter("nodeconfig.node.creations",
		metric.WithDescription("Number of layout nodes created"),
	)
	if err != nil {
		return nil, err
	}

	internalNodes, err := meter.Int64Counter("nodeconfig.internal_node.creations",
		metric.WithDescription("Number of internal nodes created"),
	)
	if err != nil {
		return nil, err
	}

	poolAcquires, err := meter.Int64Counter("nodeconfig.pool.acquires",
		metric.WithDescription("Number of internal node pool acquires"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		configBuilds:  configBuilds,
		nodes:         nodes,
		internalNodes: internalNodes,
		poolAcquires:  poolAcquires,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConfigBuild records an engine config build.
func (m *otelMetrics) RecordConfigBuild(ctx context.Context) {
	m.configBuilds.Add(ctx, 1)
}

// RecordNodeCreated records a layout node creation.
func (m *otelMetrics) RecordNodeCreated(ctx context.Context, source string) {
	m.nodes.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

// RecordInternalNodeCreated records an internal node creation.
func (m *otelMetrics) RecordInternalNodeCreated(ctx context.Context, custom bool) {
	m.internalNodes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("custom", custom)))
}

// RecordPoolAcquire records a pool acquire.
func (m *otelMetrics) RecordPoolAcquire(ctx context.Context, hit bool) {
	m.poolAcquires.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

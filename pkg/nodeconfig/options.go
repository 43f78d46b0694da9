package nodeconfig

import (
	"log/slog"

	"github.com/randalmurphal/nodeconfig/pkg/nodeconfig/observability"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger. Default: slog.Default().
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics{}.
//
// Example:
//
//	r := nodeconfig.NewRegistry(nodeconfig.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracing sets the span manager used by Prewarm.
// Default: observability.NoopSpanManager{}.
func WithTracing(s observability.SpanManager) Option {
	return func(r *Registry) {
		if s != nil {
			r.spans = s
		}
	}
}

// WithNodeSizeHint sets the initial node size hint. Default: 256.
func WithNodeSizeHint(size int) Option {
	return func(r *Registry) {
		r.sizeHint.Store(int64(size))
	}
}

// WithNodeFactory installs a node factory at construction.
func WithNodeFactory(f NodeFactory) Option {
	return func(r *Registry) {
		s := CustomStrategy(f)
		r.strategy.Store(&s)
	}
}

// WithInternalNodeFactory installs an internal node factory at construction.
func WithInternalNodeFactory(f InternalNodeFactory) Option {
	return func(r *Registry) {
		r.internalFactory.Store(&internalFactorySlot{factory: f})
	}
}

package nodeconfig

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/nodeconfig/pkg/nodeconfig/config"
	"github.com/randalmurphal/nodeconfig/pkg/nodeconfig/observability"
)

// DefaultNodeSizeHint is the node size hint of a new registry.
const DefaultNodeSizeHint = config.DefaultNodeSizeHint

// Registry owns one lazily built EngineConfig plus the factory overrides
// and size hint used when creating nodes.
//
// The EngineConfig is built on first use and never rebuilt. Factories and the
// size hint may be replaced at any time; a concurrent CreateNode sees either
// the old or the new value. Install overrides before creating nodes from
// multiple goroutines if the difference matters.
//
// Registry is safe for concurrent use.
type Registry struct {
	config     atomic.Pointer[EngineConfig]
	configOnce sync.Once
	// configMu serializes mutation of a built config.
	configMu sync.Mutex

	sizeHint        atomic.Int64
	strategy        atomic.Pointer[NodeStrategy]
	internalFactory atomic.Pointer[internalFactorySlot]

	pool *InternalNodePool

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	onBuild func(*EngineConfig)
}

// internalFactorySlot lets a nil factory be stored atomically.
type internalFactorySlot struct {
	factory InternalNodeFactory
}

// NewRegistry creates a registry with default settings: no factories
// installed, a node size hint of 256, and no metrics or tracing.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	r.sizeHint.Store(DefaultNodeSizeHint)
	r.pool = &InternalNodePool{registry: r}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRegistryFromSettings creates a registry configured by s.
// Metrics and tracing use the global OTel providers when enabled. opts are
// applied after s, so they take precedence.
func NewRegistryFromSettings(s config.Settings, opts ...Option) (*Registry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var base []Option
	if s.Metrics {
		base = append(base, WithMetrics(observability.NewMetricsRecorder()))
	}
	if s.Tracing {
		base = append(base, WithTracing(observability.NewSpanManager()))
	}

	r := NewRegistry(append(base, opts...)...)
	if err := r.ApplySettings(s); err != nil {
		return nil, err
	}
	return r, nil
}

// ApplySettings applies the size hint and debug flag from s.
// The EngineConfig is only built here if debug logging is requested or the
// config already exists.
func (r *Registry) ApplySettings(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.SetNodeSizeHint(s.NodeSizeHint)
	if s.DebugLogging || r.config.Load() != nil {
		r.SetDebugLogging(s.DebugLogging)
	}
	return nil
}

// engineConfig returns the config, building it on first call.
// Every accessor that needs the config goes through here.
func (r *Registry) engineConfig() *EngineConfig {
	if cfg := r.config.Load(); cfg != nil {
		return cfg
	}
	r.configOnce.Do(r.buildConfig)
	return r.config.Load()
}

func (r *Registry) buildConfig() {
	cfg := newEngineConfig()
	if r.onBuild != nil {
		r.onBuild(cfg)
	}
	r.config.Store(cfg)

	r.metrics.RecordConfigBuild(context.Background())
	observability.LogConfigBuilt(r.logger, cfg.ID(), cfg.UseWebDefaults())
}

// EngineConfig returns the shared config, building it if necessary.
func (r *Registry) EngineConfig() *EngineConfig {
	return r.engineConfig()
}

// CreateNode creates a layout node bound to the shared EngineConfig.
//
// With a custom strategy the installed factory is asked first; if it defers,
// or no factory is installed, a LayoutNode is constructed. The result is never
// nil unless a factory produces a typed nil.
func (r *Registry) CreateNode() Node {
	cfg := r.engineConfig()
	ctx := context.Background()

	f := r.NodeStrategy().Factory()
	if f == nil {
		r.metrics.RecordNodeCreated(ctx, observability.SourceDefault)
		return NewLayoutNode(cfg)
	}

	if n, ok := f.CreateWithConfig(cfg).Node(); ok {
		r.metrics.RecordNodeCreated(ctx, observability.SourceFactory)
		return n
	}

	observability.LogNodeDeferred(r.logger, cfg.ID())
	r.metrics.RecordNodeCreated(ctx, observability.SourceFallback)
	return NewLayoutNode(cfg)
}

// SetDebugLogging toggles whether the engine prints the node tree after each
// layout pass. Takes effect on the next pass.
func (r *Registry) SetDebugLogging(enabled bool) {
	cfg := r.engineConfig()

	r.configMu.Lock()
	cfg.printDebugTree.Store(enabled)
	r.configMu.Unlock()

	observability.LogDebugLogging(r.logger, cfg.ID(), enabled)
}

// InstallNodeFactory installs f as the node factory. A nil f restores the
// default strategy.
func (r *Registry) InstallNodeFactory(f NodeFactory) {
	r.SetNodeStrategy(CustomStrategy(f))
}

// SetNodeStrategy replaces the node construction strategy.
func (r *Registry) SetNodeStrategy(s NodeStrategy) {
	r.strategy.Store(&s)
	observability.LogNodeFactoryInstalled(r.logger, s.IsCustom())
}

// NodeStrategy returns the active node construction strategy.
func (r *Registry) NodeStrategy() NodeStrategy {
	if s := r.strategy.Load(); s != nil {
		return *s
	}
	return DefaultStrategy()
}

// InstallInternalNodeFactory installs f as the internal node factory.
// A nil f restores default construction.
func (r *Registry) InstallInternalNodeFactory(f InternalNodeFactory) {
	r.internalFactory.Store(&internalFactorySlot{factory: f})
	observability.LogInternalNodeFactoryInstalled(r.logger, f != nil)
}

// InternalNodeFactory returns the installed internal node factory, or nil.
func (r *Registry) InternalNodeFactory() InternalNodeFactory {
	if slot := r.internalFactory.Load(); slot != nil {
		return slot.factory
	}
	return nil
}

// CreateInternalNode creates an internal node with the installed factory,
// or a ComponentNode when none is installed.
func (r *Registry) CreateInternalNode() InternalNode {
	ctx := context.Background()
	if f := r.InternalNodeFactory(); f != nil {
		r.metrics.RecordInternalNodeCreated(ctx, true)
		return f.Create()
	}
	r.metrics.RecordInternalNodeCreated(ctx, false)
	return NewComponentNode()
}

// SetNodeSizeHint sets the node size hint consumed by internal node pooling.
// The value is stored as given.
func (r *Registry) SetNodeSizeHint(size int) {
	r.sizeHint.Store(int64(size))
	observability.LogSizeHint(r.logger, size)
}

// NodeSizeHint returns the node size hint. Default: 256.
func (r *Registry) NodeSizeHint() int {
	return int(r.sizeHint.Load())
}

// Pool returns the registry's internal node pool.
func (r *Registry) Pool() *InternalNodePool {
	return r.pool
}

// Prewarm builds the EngineConfig and fills the internal node pool up to the
// node size hint. It stops early with a *PrewarmError when ctx is done.
func (r *Registry) Prewarm(ctx context.Context) error {
	done := observability.TimedOperation()
	hint := r.NodeSizeHint()

	ctx, span := r.spans.StartPrewarmSpan(ctx, hint)
	cfg := r.engineConfig()
	r.spans.AddSpanEvent(ctx, "engine_config.ready", attribute.String("config.id", cfg.ID()))

	err := r.pool.fill(ctx, hint)
	r.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogPrewarmError(r.logger, r.pool.Len(), err)
		return err
	}

	observability.LogPrewarm(r.logger, cfg.ID(), r.pool.Len(), done())
	return nil
}

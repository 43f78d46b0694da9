package nodeconfig

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/randalmurphal/nodeconfig/pkg/nodeconfig/observability"
)

// withBuildHook runs fn on every engine config the registry builds,
// before it is published.
func withBuildHook(fn func(*EngineConfig)) Option {
	return func(r *Registry) {
		r.onBuild = fn
	}
}

// quietLogger discards everything.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

// bufferLogger logs JSON at debug level into the returned buffer.
func bufferLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// bufferNode is a custom layout node produced by test factories.
type bufferNode struct {
	config *EngineConfig
}

func (n *bufferNode) Config() *EngineConfig { return n.config }

// stubFactory produces bufferNodes, or defers when deferAll is set.
type stubFactory struct {
	deferAll bool

	mu    sync.Mutex
	calls int
}

func (f *stubFactory) CreateDefault() NodeResult {
	return f.CreateWithConfig(nil)
}

func (f *stubFactory) CreateWithConfig(cfg *EngineConfig) NodeResult {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.deferAll {
		return Deferred()
	}
	return Produced(&bufferNode{config: cfg})
}

func (f *stubFactory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// markerNode is an internal node produced by test factories.
type markerNode struct {
	id     int
	resets int
}

func (n *markerNode) Reset() { n.resets++ }

// recordingMetrics counts recorder calls.
type recordingMetrics struct {
	mu            sync.Mutex
	configBuilds  int
	nodes         map[string]int
	internalNodes map[bool]int
	poolAcquires  map[bool]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		nodes:         make(map[string]int),
		internalNodes: make(map[bool]int),
		poolAcquires:  make(map[bool]int),
	}
}

var _ observability.MetricsRecorder = (*recordingMetrics)(nil)

func (m *recordingMetrics) RecordConfigBuild(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configBuilds++
}

func (m *recordingMetrics) RecordNodeCreated(_ context.Context, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[source]++
}

func (m *recordingMetrics) RecordInternalNodeCreated(_ context.Context, custom bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.internalNodes[custom]++
}

func (m *recordingMetrics) RecordPoolAcquire(_ context.Context, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.poolAcquires[hit]++
}

// recordingSpans tracks prewarm spans and events.
type recordingSpans struct {
	mu      sync.Mutex
	started []int
	events  []string
	ended   []error
}

var _ observability.SpanManager = (*recordingSpans)(nil)

func (s *recordingSpans) StartPrewarmSpan(ctx context.Context, sizeHint int) (context.Context, trace.Span) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, sizeHint)
	return ctx, noop.Span{}
}

func (s *recordingSpans) EndSpanWithError(_ trace.Span, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = append(s.ended, err)
}

func (s *recordingSpans) AddSpanEvent(_ context.Context, name string, _ ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, name)
}

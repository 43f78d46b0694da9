/*
Package nodeconfig holds the shared layout engine configuration and the
factory hooks a UI framework uses to create layout nodes and its own
internal nodes.

# Overview

A Registry owns exactly one EngineConfig, built the first time anything
needs it and shared by every node the registry creates. The config always
uses web defaults; its debug tree flag can be toggled at any time with
SetDebugLogging.

Node construction can be overridden with a NodeFactory. A factory may
produce a node or defer; deferring makes the registry construct a default
LayoutNode, so CreateNode always yields a node:

	type bufferFactory struct{}

	func (bufferFactory) CreateDefault() nodeconfig.NodeResult {
	    return nodeconfig.Deferred()
	}

	func (bufferFactory) CreateWithConfig(cfg *nodeconfig.EngineConfig) nodeconfig.NodeResult {
	    return nodeconfig.Produced(newBufferNode(cfg))
	}

	r := nodeconfig.NewRegistry()
	r.InstallNodeFactory(bufferFactory{})
	node := r.CreateNode()

Internal nodes are created with CreateInternalNode. An installed
InternalNodeFactory is always used; there is no deferral.

# Process-wide Registry

Default returns a process-wide registry, and the package-level functions
(CreateNode, SetDebugLogging, InstallNodeFactory, ...) operate on it. Code
that wants an explicitly scoped registry can carry one in a context:

	ctx = nodeconfig.WithRegistry(ctx, r)
	node := nodeconfig.FromContext(ctx).CreateNode()

# Pooling

NodeSizeHint (default 256) bounds the registry's InternalNodePool. Prewarm
builds the config and fills the pool ahead of the first frame:

	if err := r.Prewarm(ctx); err != nil {
	    log.Printf("prewarm: %v", err)
	}

# Settings

NewRegistryFromSettings applies settings loaded by the config subpackage and
enables OpenTelemetry metrics and tracing when requested.

# Thread Safety

All Registry methods are safe for concurrent use. The EngineConfig is fully
built before any goroutine can observe it. Factory and size hint changes are
plain atomic stores: a CreateNode racing with InstallNodeFactory may use
either factory, so install overrides at startup before creating nodes
concurrently.

# Subpackages

  - config: settings loading (YAML, JSON, TOML)
  - observability: slog helpers, OpenTelemetry metrics and tracing
*/
package nodeconfig

package nodeconfig

import "sync"

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first call.
//
// Everything the registry publishes (its EngineConfig in particular) is
// visible to all goroutines once Default returns; see Registry for the
// ordering of factory installation against node creation.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// CreateNode creates a layout node with the default registry.
func CreateNode() Node {
	return Default().CreateNode()
}

// CreateInternalNode creates an internal node with the default registry.
func CreateInternalNode() InternalNode {
	return Default().CreateInternalNode()
}

// SetDebugLogging toggles debug tree printing on the default registry.
func SetDebugLogging(enabled bool) {
	Default().SetDebugLogging(enabled)
}

// InstallNodeFactory installs a node factory on the default registry.
func InstallNodeFactory(f NodeFactory) {
	Default().InstallNodeFactory(f)
}

// InstallInternalNodeFactory installs an internal node factory on the
// default registry.
func InstallInternalNodeFactory(f InternalNodeFactory) {
	Default().InstallInternalNodeFactory(f)
}

// SetNodeSizeHint sets the node size hint on the default registry.
func SetNodeSizeHint(size int) {
	Default().SetNodeSizeHint(size)
}

// NodeSizeHint returns the node size hint of the default registry.
func NodeSizeHint() int {
	return Default().NodeSizeHint()
}

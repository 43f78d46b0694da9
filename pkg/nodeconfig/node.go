package nodeconfig

// Node is a layout node as seen by the layout engine.
// Every node is bound to the EngineConfig it was created with.
type Node interface {
	Config() *EngineConfig
}

// LayoutNode is the default Node implementation.
type LayoutNode struct {
	config *EngineConfig
}

// Compile-time interface check.
var _ Node = (*LayoutNode)(nil)

// NewLayoutNode creates a layout node bound to cfg.
// A nil cfg yields a node that the engine treats as using its built-in
// defaults.
func NewLayoutNode(cfg *EngineConfig) *LayoutNode {
	return &LayoutNode{config: cfg}
}

// Config returns the config the node is bound to.
func (n *LayoutNode) Config() *EngineConfig {
	return n.config
}

// NodeResult is the outcome of a NodeFactory call: either a produced node
// or a deferral back to default construction.
type NodeResult struct {
	node Node
}

// Produced wraps a node created by a factory.
// Produced(nil) is equivalent to Deferred().
func Produced(n Node) NodeResult {
	return NodeResult{node: n}
}

// Deferred reports that the factory declined to create a node, so the
// registry should construct a default one.
func Deferred() NodeResult {
	return NodeResult{}
}

// Node returns the produced node and true, or nil and false when deferred.
func (r NodeResult) Node() (Node, bool) {
	return r.node, r.node != nil
}

// IsDeferred reports whether the result defers to default construction.
func (r NodeResult) IsDeferred() bool {
	return r.node == nil
}

// NodeFactory creates layout nodes in place of the default constructor,
// for example to back style properties with a direct byte buffer.
//
// Implementations must be safe for concurrent use.
type NodeFactory interface {
	// CreateDefault creates a node using the engine's built-in config.
	CreateDefault() NodeResult

	// CreateWithConfig creates a node bound to cfg.
	CreateWithConfig(cfg *EngineConfig) NodeResult
}

// NodeStrategy selects how the registry constructs layout nodes.
// The zero value is the default strategy.
type NodeStrategy struct {
	factory NodeFactory
}

// DefaultStrategy constructs every node with NewLayoutNode.
func DefaultStrategy() NodeStrategy {
	return NodeStrategy{}
}

// CustomStrategy delegates node construction to f, falling back to
// NewLayoutNode when f defers. A nil f is the default strategy.
func CustomStrategy(f NodeFactory) NodeStrategy {
	return NodeStrategy{factory: f}
}

// IsCustom reports whether a factory is installed.
func (s NodeStrategy) IsCustom() bool {
	return s.factory != nil
}

// Factory returns the installed factory, or nil for the default strategy.
func (s NodeStrategy) Factory() NodeFactory {
	return s.factory
}

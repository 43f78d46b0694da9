package nodeconfig

// InternalNode is the UI framework's own node representation.
// This package only creates and pools internal nodes; their contents are
// owned by the framework.
type InternalNode interface {
	// Reset clears the node so it can be handed out again by a pool.
	Reset()
}

// InternalNodeFactory creates internal nodes. Unlike NodeFactory it has no
// opt-out: whatever Create returns is used.
//
// Implementations must be safe for concurrent use.
type InternalNodeFactory interface {
	Create() InternalNode
}

// InternalNodeFactoryFunc adapts a function to InternalNodeFactory.
type InternalNodeFactoryFunc func() InternalNode

// Create calls f.
func (f InternalNodeFactoryFunc) Create() InternalNode {
	return f()
}

// ComponentNode is the default InternalNode. It holds the layout node it
// wraps and its children.
type ComponentNode struct {
	Layout   Node
	Children []InternalNode
}

// Compile-time interface check.
var _ InternalNode = (*ComponentNode)(nil)

// NewComponentNode creates an empty component node.
func NewComponentNode() *ComponentNode {
	return &ComponentNode{}
}

// Reset drops the layout node and children, keeping the children backing
// array for reuse.
func (n *ComponentNode) Reset() {
	n.Layout = nil
	clear(n.Children)
	n.Children = n.Children[:0]
}

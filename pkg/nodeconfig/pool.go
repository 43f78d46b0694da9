package nodeconfig

import (
	"context"
	"sync"
)

// InternalNodePool keeps released internal nodes for reuse, holding at most
// the registry's node size hint.
//
// InternalNodePool is safe for concurrent use.
type InternalNodePool struct {
	mu       sync.Mutex
	free     []InternalNode
	registry *Registry
}

// Acquire returns a pooled node, or a new one from the registry's internal
// node path when the pool is empty.
func (p *InternalNodePool) Acquire() InternalNode {
	ctx := context.Background()

	p.mu.Lock()
	if last := len(p.free) - 1; last >= 0 {
		n := p.free[last]
		p.free[last] = nil
		p.free = p.free[:last]
		p.mu.Unlock()
		p.registry.metrics.RecordPoolAcquire(ctx, true)
		return n
	}
	p.mu.Unlock()

	p.registry.metrics.RecordPoolAcquire(ctx, false)
	return p.registry.CreateInternalNode()
}

// Release resets n and returns it to the pool. It reports false when the pool
// is already at the size hint and n was dropped.
func (p *InternalNodePool) Release(n InternalNode) bool {
	if n == nil {
		return false
	}
	n.Reset()
	return p.put(n)
}

// Len returns the number of pooled nodes.
func (p *InternalNodePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

func (p *InternalNodePool) put(n InternalNode) bool {
	limit := p.registry.NodeSizeHint()

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) >= limit {
		return false
	}
	p.free = append(p.free, n)
	return true
}

// fill creates nodes until the pool holds target nodes or is full.
func (p *InternalNodePool) fill(ctx context.Context, target int) error {
	for p.Len() < target {
		if err := ctx.Err(); err != nil {
			return &PrewarmError{Pooled: p.Len(), Err: err}
		}
		if !p.put(p.registry.CreateInternalNode()) {
			return nil
		}
	}
	return nil
}

package nodeconfig

import "fmt"

// PrewarmError reports a prewarm pass stopped before the pool was full.
type PrewarmError struct {
	// Pooled is the number of nodes in the pool when prewarm stopped.
	Pooled int
	// Err is the context error that stopped it.
	Err error
}

// Error implements the error interface.
func (e *PrewarmError) Error() string {
	return fmt.Sprintf("prewarm stopped after %d pooled nodes: %v", e.Pooled, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PrewarmError) Unwrap() error {
	return e.Err
}

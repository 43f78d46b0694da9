package nodeconfig

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// EngineConfig holds engine-wide defaults for the layout engine.
//
// An EngineConfig is built once per Registry and shared by every node the
// registry creates. Only the registry may change it.
type EngineConfig struct {
	id             string
	createdAt      time.Time
	useWebDefaults bool
	printDebugTree atomic.Bool
}

// newEngineConfig builds a config with web defaults enabled.
func newEngineConfig() *EngineConfig {
	return &EngineConfig{
		id:             uuid.New().String(),
		createdAt:      time.Now(),
		useWebDefaults: true,
	}
}

// ID returns the unique identifier assigned at construction.
func (c *EngineConfig) ID() string {
	return c.id
}

// CreatedAt returns the construction time.
func (c *EngineConfig) CreatedAt() time.Time {
	return c.createdAt
}

// UseWebDefaults reports whether the engine applies web (CSS) defaults
// such as row flex direction. Always true.
func (c *EngineConfig) UseWebDefaults() bool {
	return c.useWebDefaults
}

// PrintDebugTree reports whether the engine prints the node tree after
// each layout pass.
func (c *EngineConfig) PrintDebugTree() bool {
	return c.printDebugTree.Load()
}

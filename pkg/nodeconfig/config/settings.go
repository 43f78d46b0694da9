package config

import (
	"errors"
	"fmt"
)

// DefaultNodeSizeHint is the node size hint used when none is configured.
const DefaultNodeSizeHint = 256

// Sentinel errors for settings validation and loading.
var (
	// ErrInvalidSizeHint indicates a node size hint below zero.
	ErrInvalidSizeHint = errors.New("node size hint must be >= 0")

	// ErrUnsupportedFormat indicates a settings file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported settings format")
)

// Settings are the startup options for a registry.
type Settings struct {
	// NodeSizeHint sizes the internal node pool. Default: 256.
	NodeSizeHint int `yaml:"node_size_hint" json:"node_size_hint" toml:"node_size_hint"`

	// DebugLogging makes the engine print the node tree after each layout pass.
	DebugLogging bool `yaml:"debug_logging" json:"debug_logging" toml:"debug_logging"`

	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics" toml:"metrics"`

	// Tracing enables OpenTelemetry tracing.
	Tracing bool `yaml:"tracing" json:"tracing" toml:"tracing"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		NodeSizeHint: DefaultNodeSizeHint,
	}
}

// Validate reports whether s can be applied to a registry.
func (s Settings) Validate() error {
	if s.NodeSizeHint < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSizeHint, s.NodeSizeHint)
	}
	return nil
}

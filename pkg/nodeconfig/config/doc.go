/*
Package config loads registry startup settings from YAML, JSON, or TOML.

# Basic Usage

	s, err := config.FromFile("layout.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	r := nodeconfig.NewRegistryFromSettings(s)

A settings file looks like:

	node_size_hint: 512
	debug_logging: false
	metrics: true
	tracing: true

Keys left out keep their Defaults() value, so an empty file yields a node size
hint of 256 with debug logging, metrics, and tracing disabled.

# Validation

All loaders run Settings.Validate before returning. A negative node size hint
fails with ErrInvalidSizeHint; an unknown file extension fails with
ErrUnsupportedFormat.
*/
package config

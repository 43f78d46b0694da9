package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/nodeconfig/pkg/nodeconfig/config"
)

// TestDefaults verifies the settings used when nothing is configured.
func TestDefaults(t *testing.T) {
	s := config.Defaults()
	assert.Equal(t, 256, s.NodeSizeHint)
	assert.False(t, s.DebugLogging)
	assert.False(t, s.Metrics)
	assert.False(t, s.Tracing)
	assert.NoError(t, s.Validate())
}

// TestValidate verifies size hint validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		hint    int
		wantErr bool
	}{
		{"default", 256, false},
		{"zero", 0, false},
		{"large", 1 << 20, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Settings{NodeSizeHint: tt.hint}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidSizeHint)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestParsers verifies each format parser with full, partial, and empty input.
func TestParsers(t *testing.T) {
	full := config.Settings{NodeSizeHint: 512, DebugLogging: true, Metrics: true, Tracing: true}

	tests := []struct {
		name  string
		parse func([]byte) (config.Settings, error)
		data  string
		want  config.Settings
	}{
		{
			"yaml full",
			config.FromYAML,
			"node_size_hint: 512\ndebug_logging: true\nmetrics: true\ntracing: true\n",
			full,
		},
		{
			"yaml partial keeps defaults",
			config.FromYAML,
			"debug_logging: true\n",
			config.Settings{NodeSizeHint: 256, DebugLogging: true},
		},
		{"yaml empty", config.FromYAML, "", config.Defaults()},
		{
			"json full",
			config.FromJSON,
			`{"node_size_hint": 512, "debug_logging": true, "metrics": true, "tracing": true}`,
			full,
		},
		{"json empty object", config.FromJSON, `{}`, config.Defaults()},
		{
			"toml full",
			config.FromTOML,
			"node_size_hint = 512\ndebug_logging = true\nmetrics = true\ntracing = true\n",
			full,
		},
		{
			"toml partial keeps defaults",
			config.FromTOML,
			"metrics = true\n",
			config.Settings{NodeSizeHint: 256, Metrics: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParsers_Errors verifies malformed and invalid input is rejected.
func TestParsers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		parse   func([]byte) (config.Settings, error)
		data    string
		wantMsg string
	}{
		{"yaml malformed", config.FromYAML, "node_size_hint: [", "parse yaml"},
		{"yaml wrong type", config.FromYAML, "node_size_hint: lots", "parse yaml"},
		{"json malformed", config.FromJSON, `{"node_size_hint":`, "parse json"},
		{"toml malformed", config.FromTOML, "node_size_hint = ", "parse toml"},
		{"yaml negative hint", config.FromYAML, "node_size_hint: -4", "node size hint"},
		{"json negative hint", config.FromJSON, `{"node_size_hint": -4}`, "node size hint"},
		{"toml negative hint", config.FromTOML, "node_size_hint = -4", "node size hint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, config.Settings{}, got)
		})
	}
}

// TestFromFile verifies format detection by extension.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"layout.yaml": "node_size_hint: 128\n",
		"layout.YML":  "node_size_hint: 128\n",
		"layout.json": `{"node_size_hint": 128}`,
		"layout.toml": "node_size_hint = 128\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			s, err := config.FromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 128, s.NodeSizeHint)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "layout.ini")
		require.NoError(t, os.WriteFile(path, []byte("node_size_hint=1"), 0o644))

		_, err := config.FromFile(path)
		assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read settings file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.False(t, cfg.Feed.Enabled)
	assert.Equal(t, "ws://localhost:8765/telemetry", cfg.Feed.URL)
	assert.True(t, cfg.Demo.Enabled)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "av30.yaml")
	data := `
window:
  width: 800
  height: 600
  fullscreen: true
feed:
  enabled: true
  url: ws://10.0.0.5:9000/telemetry
demo:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Window.Fullscreen)
	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, "ws://10.0.0.5:9000/telemetry", cfg.Feed.URL)
	assert.False(t, cfg.Demo.Enabled)
}

func TestLoadConfigPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "av30.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 720\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 720, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.True(t, cfg.Demo.Enabled)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "av30.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [not a map\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigFloorsWindowSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "av30.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 10\n  height: -5\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Window.Width)
	assert.Equal(t, 100, cfg.Window.Height)
}

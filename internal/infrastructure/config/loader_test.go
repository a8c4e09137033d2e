package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "nexus", mgr.viper.GetString("backend"))
	assert.Equal(t, 1280, mgr.viper.GetInt("display.width"))
	assert.Equal(t, "box", mgr.viper.GetString("display.zoom_mode"))
	assert.True(t, mgr.viper.GetBool("gstreamer.bridge_logs"))
}

func TestManagerLoad_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManagerLoad_ReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `backend = 'generic'

[audio]
sink_factory = 'alsasink'

[display]
width = 1920
height = 1080
zoom_mode = 'full'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "generic", cfg.Backend)
	assert.Equal(t, "alsasink", cfg.Audio.SinkFactory)
	assert.Equal(t, 1920, cfg.Display.Width)
	assert.Equal(t, ZoomModeNameFull, cfg.Display.ZoomMode)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.InDelta(t, 1.0, cfg.Volume.Initial, 1e-9)
}

func TestManagerLoad_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GSTSINK_BACKEND", "generic")
	t.Setenv("GSTSINK_LOG_LEVEL", "debug")
	t.Setenv("GSTSINK_DISPLAY_ZORDER", "3")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "generic", cfg.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Display.ZOrder)
}

func TestManagerLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("backend = 'omx'\n"), filePerm))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
}

func TestManagerReload_NotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	updated := DefaultConfig()
	updated.Volume.Initial = 0.25
	require.NoError(t, WriteConfigOrdered(updated, path))

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.InDelta(t, 0.25, got.Volume.Initial, 1e-9)
	assert.InDelta(t, 0.25, mgr.Get().Volume.Initial, 1e-9)

	got = nil
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	assert.Nil(t, got)
}

func TestManagerReload_KeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, os.WriteFile(path, []byte("[display]\nwidth = -4\n"), filePerm))

	mgr.mu.Lock()
	err = mgr.reload()
	mgr.mu.Unlock()

	require.Error(t, err)
	assert.Equal(t, 1280, mgr.Get().Display.Width)
}

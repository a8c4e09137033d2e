package config

import (
	"testing"

	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = entity.BackendGeneric
	cfg.Audio.SinkFactory = "pulsesink"
	cfg.Video.Caps = "video/x-raw(memory:GLMemory)"
	cfg.Display = DisplayConfig{X: 10, Y: 20, Width: 640, Height: 480, ZOrder: 2, ZoomMode: ZoomModeNameFull}
	cfg.Volume.Scale = 10
	cfg.Playback.StalePTS = TristateTrue
	cfg.Playback.EOSMode = "appsrc"

	profile, err := cfg.Profile()
	require.NoError(t, err)

	assert.Equal(t, entity.BackendGeneric, profile.Name)
	assert.Equal(t, "pulsesink", profile.Audio.SinkFactory)
	assert.Equal(t, "audio-sink", profile.Audio.SinkName)
	assert.Equal(t, "video/x-raw(memory:GLMemory)", profile.Video.Caps)
	assert.Equal(t, "10,20,640,480", profile.Display.WindowSet())
	assert.Equal(t, 2, profile.Display.ZOrder)
	assert.Equal(t, entity.ZoomModeFull, profile.Display.ZoomMode)
	assert.InDelta(t, 10.0, profile.VolumeScale, 1e-9)
	assert.Equal(t, "volume", profile.VolumeProperty)
	assert.True(t, profile.CanReportStalePTS)
	assert.Equal(t, entity.EOSModeAppSrc, profile.EOSMode)
	assert.True(t, profile.DisplayProperties.Empty())
}

func TestProfile_AutoKeepsBackendDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = entity.BackendGeneric

	profile, err := cfg.Profile()
	require.NoError(t, err)
	assert.False(t, profile.CanReportStalePTS)
	assert.Equal(t, entity.EOSModeEvent, profile.EOSMode)
	assert.InDelta(t, 1.0, profile.VolumeScale, 1e-9)
}

func TestProfile_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "omx"

	_, err := cfg.Profile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "omx")
}

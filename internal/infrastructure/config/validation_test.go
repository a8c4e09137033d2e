package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "generic backend", mutate: func(c *Config) { c.Backend = "generic" }},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "omx" }, wantErr: "backend"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero width", mutate: func(c *Config) { c.Display.Width = 0 }, wantErr: "display.width"},
		{name: "negative origin", mutate: func(c *Config) { c.Display.X = -1 }, wantErr: "display.x"},
		{name: "bad zoom", mutate: func(c *Config) { c.Display.ZoomMode = "stretch" }, wantErr: "display.zoom_mode"},
		{name: "volume above one", mutate: func(c *Config) { c.Volume.Initial = 1.5 }, wantErr: "volume.initial"},
		{name: "negative scale", mutate: func(c *Config) { c.Volume.Scale = -1 }, wantErr: "volume.scale"},
		{name: "bad stale pts", mutate: func(c *Config) { c.Playback.StalePTS = "maybe" }, wantErr: "playback.stale_pts"},
		{name: "event eos", mutate: func(c *Config) { c.Playback.EOSMode = "event" }},
		{name: "bad eos", mutate: func(c *Config) { c.Playback.EOSMode = "flush" }, wantErr: "playback.eos_mode"},
		{name: "debug level", mutate: func(c *Config) { c.GStreamer.DebugLevel = 10 }, wantErr: "gstreamer.debug_level"},
		{name: "absolute prefix", mutate: func(c *Config) { c.GStreamer.Prefix = "/opt/gstreamer" }},
		{name: "relative prefix", mutate: func(c *Config) { c.GStreamer.Prefix = "opt/gstreamer" }, wantErr: "gstreamer.prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = " Generic "
	cfg.Logging.Level = "DEBUG"
	cfg.Display.ZoomMode = "FULL"
	cfg.Playback.StalePTS = ""
	cfg.Playback.EOSMode = ""

	normalizeConfig(cfg)

	assert.Equal(t, "generic", cfg.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ZoomModeNameFull, cfg.Display.ZoomMode)
	assert.Equal(t, TristateAuto, cfg.Playback.StalePTS)
	assert.Equal(t, "auto", cfg.Playback.EOSMode)
	require.NoError(t, validateConfig(cfg))
}

package config

import "github.com/bnema/gstsink/internal/domain/entity"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultInitialVolume = 1.0
	defaultEOSMode       = "auto"

	// GST_LEVEL_WARNING
	defaultGStreamerDebugLevel = 2
)

// DefaultConfig returns the default configuration: the Nexus backend with
// its own element names and a 720p box-scaled video plane.
func DefaultConfig() *Config {
	geometry := entity.DefaultDisplayGeometry()

	return &Config{
		Backend: entity.BackendNexus,
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Display: DisplayConfig{
			X:        geometry.X,
			Y:        geometry.Y,
			Width:    geometry.Width,
			Height:   geometry.Height,
			ZOrder:   geometry.ZOrder,
			ZoomMode: ZoomModeNameBox,
		},
		Volume: VolumeConfig{
			Initial: defaultInitialVolume,
		},
		Playback: PlaybackConfig{
			StalePTS: TristateAuto,
			EOSMode:  defaultEOSMode,
		},
		GStreamer: GStreamerConfig{
			DebugLevel: defaultGStreamerDebugLevel,
			BridgeLogs: true,
		},
	}
}

// Package config provides configuration management for gstsink with Viper integration.
package config

// Config represents the complete configuration for gstsink.
type Config struct {
	// Backend selects the built-in profile the overrides below apply to ("nexus" or "generic").
	Backend  string         `mapstructure:"backend" toml:"backend"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Audio    StageConfig    `mapstructure:"audio" toml:"audio"`
	Video    StageConfig    `mapstructure:"video" toml:"video"`
	Display  DisplayConfig  `mapstructure:"display" toml:"display"`
	Volume   VolumeConfig   `mapstructure:"volume" toml:"volume"`
	Playback PlaybackConfig `mapstructure:"playback" toml:"playback"`
	// GStreamer controls the GStreamer debug log bridge.
	GStreamer GStreamerConfig `mapstructure:"gstreamer" toml:"gstreamer"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format"`
}

// StageConfig overrides the element names of one output stage.
// Empty values keep the backend's defaults.
type StageConfig struct {
	DecodeFactory string `mapstructure:"decode_factory" toml:"decode_factory"`
	SinkFactory   string `mapstructure:"sink_factory" toml:"sink_factory"`
	SinkName      string `mapstructure:"sink_name" toml:"sink_name"`
	Caps          string `mapstructure:"caps" toml:"caps"`
}

// ZoomModeName is the config spelling of a video plane zoom mode.
type ZoomModeName string

const (
	ZoomModeNameFull ZoomModeName = "full"
	ZoomModeNameBox  ZoomModeName = "box"
)

// DisplayConfig is the output rectangle of the video sink.
type DisplayConfig struct {
	X        int          `mapstructure:"x" toml:"x"`
	Y        int          `mapstructure:"y" toml:"y"`
	Width    int          `mapstructure:"width" toml:"width"`
	Height   int          `mapstructure:"height" toml:"height"`
	ZOrder   int          `mapstructure:"zorder" toml:"zorder"`
	ZoomMode ZoomModeName `mapstructure:"zoom_mode" toml:"zoom_mode"`
}

// VolumeConfig controls how normalized volumes reach the audio sink.
type VolumeConfig struct {
	// Initial is applied when playback starts, in [0.0, 1.0].
	Initial float64 `mapstructure:"initial" toml:"initial"`
	// Scale multiplies normalized volumes. 0 keeps the backend's scale.
	Scale float64 `mapstructure:"scale" toml:"scale"`
	// Property is the sink property receiving the scaled volume.
	Property string `mapstructure:"property" toml:"property"`
}

// Tristate is a boolean setting that can defer to the backend.
type Tristate string

const (
	TristateAuto  Tristate = "auto"
	TristateTrue  Tristate = "true"
	TristateFalse Tristate = "false"
)

// PlaybackConfig holds engine-facing capability overrides.
type PlaybackConfig struct {
	// StalePTS overrides whether the sinks accept stale presentation timestamps.
	StalePTS Tristate `mapstructure:"stale_pts" toml:"stale_pts"`
	// EOSMode is "auto", "appsrc" or "event".
	EOSMode string `mapstructure:"eos_mode" toml:"eos_mode"`
}

// GStreamerConfig controls GStreamer's own logging and install location.
type GStreamerConfig struct {
	// Prefix optionally points to a GStreamer install outside the system
	// paths (e.g. /opt/gstreamer on a board SDK).
	Prefix string `mapstructure:"prefix" toml:"prefix"`
	// DebugLevel is GStreamer's threshold (0 = none ... 9 = memdump).
	DebugLevel int `mapstructure:"debug_level" toml:"debug_level"`
	// BridgeLogs routes GStreamer debug messages into the application logger.
	BridgeLogs bool `mapstructure:"bridge_logs" toml:"bridge_logs"`
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/gstsink/internal/domain/entity"
)

const maxGStreamerDebugLevel = 9

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateBackend(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDisplay(config)...)
	validationErrors = append(validationErrors, validateVolume(config)...)
	validationErrors = append(validationErrors, validatePlayback(config)...)
	validationErrors = append(validationErrors, validateGStreamer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateBackend(config *Config) []string {
	if _, ok := entity.ProfileByName(config.Backend); !ok {
		return []string{fmt.Sprintf("backend must be %q or %q (got %q)", entity.BackendNexus, entity.BackendGeneric, config.Backend)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateDisplay(config *Config) []string {
	var validationErrors []string
	if config.Display.Width <= 0 || config.Display.Height <= 0 {
		validationErrors = append(validationErrors, "display.width and display.height must be positive")
	}
	if config.Display.X < 0 || config.Display.Y < 0 {
		validationErrors = append(validationErrors, "display.x and display.y must be non-negative")
	}
	switch config.Display.ZoomMode {
	case ZoomModeNameFull, ZoomModeNameBox:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("display.zoom_mode must be full or box (got %q)", config.Display.ZoomMode))
	}
	return validationErrors
}

func validateVolume(config *Config) []string {
	var validationErrors []string
	if config.Volume.Initial < 0 || config.Volume.Initial > 1 {
		validationErrors = append(validationErrors, "volume.initial must be between 0.0 and 1.0")
	}
	if config.Volume.Scale < 0 {
		validationErrors = append(validationErrors, "volume.scale must be non-negative")
	}
	return validationErrors
}

func validatePlayback(config *Config) []string {
	var validationErrors []string
	switch config.Playback.StalePTS {
	case TristateAuto, TristateTrue, TristateFalse:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("playback.stale_pts must be auto, true or false (got %q)", config.Playback.StalePTS))
	}
	switch config.Playback.EOSMode {
	case defaultEOSMode, string(entity.EOSModeAppSrc), string(entity.EOSModeEvent):
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("playback.eos_mode must be auto, appsrc or event (got %q)", config.Playback.EOSMode))
	}
	return validationErrors
}

func validateGStreamer(config *Config) []string {
	var validationErrors []string
	if config.GStreamer.DebugLevel < 0 || config.GStreamer.DebugLevel > maxGStreamerDebugLevel {
		validationErrors = append(validationErrors,
			fmt.Sprintf("gstreamer.debug_level must be between 0 and %d", maxGStreamerDebugLevel))
	}
	if prefix := config.GStreamer.Prefix; prefix != "" && !filepath.IsAbs(prefix) {
		validationErrors = append(validationErrors, "gstreamer.prefix must be an absolute path")
	}
	return validationErrors
}

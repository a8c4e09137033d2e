package gstreamer

import (
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/go-gst/go-gst/gst"
	"github.com/rs/zerolog"

	"github.com/bnema/gstsink/internal/logging"
)

const maxDebugLevel = 9

// RuntimeOptions configures GStreamer before initialisation.
type RuntimeOptions struct {
	// DebugLevel becomes GST_DEBUG unless the user already set it.
	DebugLevel int
	// BridgeLogs routes GStreamer debug output into the logger.
	BridgeLogs bool
}

var initOnce sync.Once

// Init prepares the GStreamer environment and initialises the library.
// Only the first call has an effect.
func Init(ctx context.Context, opts RuntimeOptions) {
	initOnce.Do(func() {
		log := logging.FromContext(ctx)

		applied := applyEnvironment(opts)
		gst.Init(nil)

		if opts.BridgeLogs {
			installLogBridge(log.With().Str("component", "gstreamer").Logger())
		}

		log.Debug().
			Interface("env", applied).
			Bool("bridge_logs", opts.BridgeLogs).
			Msg("gstreamer initialised")
	})
}

// applyEnvironment sets GStreamer environment variables that are not
// already set and returns the ones it set.
func applyEnvironment(opts RuntimeOptions) map[string]string {
	applied := make(map[string]string)

	if opts.DebugLevel > 0 && os.Getenv("GST_DEBUG") == "" {
		level := min(opts.DebugLevel, maxDebugLevel)
		value := strconv.Itoa(level)
		_ = os.Setenv("GST_DEBUG", value)
		applied["GST_DEBUG"] = value
	}
	if opts.BridgeLogs && os.Getenv("GST_DEBUG_NO_COLOR") == "" {
		_ = os.Setenv("GST_DEBUG_NO_COLOR", "1")
		applied["GST_DEBUG_NO_COLOR"] = "1"
	}
	return applied
}

// installLogBridge replaces GStreamer's stderr printer with logger.
func installLogBridge(logger zerolog.Logger) {
	gst.SetLogFunction(func(
		category *gst.DebugCategory,
		level gst.DebugLevel,
		file string,
		function string,
		line int,
		_ *gst.LoggedObject,
		message *gst.DebugMessage,
	) {
		zlevel := zerologLevel(level)
		if zlevel == zerolog.Disabled {
			return
		}
		event := logger.WithLevel(zlevel)
		if category != nil {
			event = event.Str("category", category.GetName())
		}
		event.
			Str("file", file).
			Str("function", function).
			Int("line", line).
			Msg(message.Get())
	})
}

// zerologLevel maps a GStreamer debug level onto zerolog.
func zerologLevel(level gst.DebugLevel) zerolog.Level {
	switch level {
	case gst.LevelError:
		return zerolog.ErrorLevel
	case gst.LevelWarning, gst.LevelFixMe:
		return zerolog.WarnLevel
	case gst.LevelInfo:
		return zerolog.InfoLevel
	case gst.LevelDebug:
		return zerolog.DebugLevel
	case gst.LevelLog, gst.LevelTrace, gst.LevelMemDump:
		return zerolog.TraceLevel
	default:
		return zerolog.Disabled
	}
}

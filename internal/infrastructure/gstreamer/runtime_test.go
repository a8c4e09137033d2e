package gstreamer

import (
	"os"
	"testing"

	"github.com/go-gst/go-gst/gst"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		level gst.DebugLevel
		want  zerolog.Level
	}{
		{gst.LevelNone, zerolog.Disabled},
		{gst.LevelError, zerolog.ErrorLevel},
		{gst.LevelWarning, zerolog.WarnLevel},
		{gst.LevelFixMe, zerolog.WarnLevel},
		{gst.LevelInfo, zerolog.InfoLevel},
		{gst.LevelDebug, zerolog.DebugLevel},
		{gst.LevelLog, zerolog.TraceLevel},
		{gst.LevelMemDump, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, zerologLevel(tt.level), "level %d", tt.level)
	}
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv("GST_DEBUG", "")
	t.Setenv("GST_DEBUG_NO_COLOR", "")

	applied := applyEnvironment(RuntimeOptions{DebugLevel: 12, BridgeLogs: true})

	assert.Equal(t, map[string]string{"GST_DEBUG": "9", "GST_DEBUG_NO_COLOR": "1"}, applied)
	assert.Equal(t, "9", os.Getenv("GST_DEBUG"))
}

func TestApplyEnvironment_KeepsUserSettings(t *testing.T) {
	t.Setenv("GST_DEBUG", "decodebin:6")
	t.Setenv("GST_DEBUG_NO_COLOR", "")

	applied := applyEnvironment(RuntimeOptions{DebugLevel: 2})

	assert.Empty(t, applied)
	assert.Equal(t, "decodebin:6", os.Getenv("GST_DEBUG"))
}

func TestFlowError(t *testing.T) {
	require.NoError(t, flowError(gst.FlowOK))
	assert.ErrorIs(t, flowError(gst.FlowFlushing), ErrFlow)
	assert.ErrorIs(t, flowError(gst.FlowEOS), ErrFlow)
}

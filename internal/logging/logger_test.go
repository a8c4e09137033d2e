package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/gstsink/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel("WARNING"))
	assert.Equal(t, zerolog.TraceLevel, logging.ParseLevel(" trace "))
	assert.Equal(t, zerolog.Disabled, logging.ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("bogus"))
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "sink")
	ctx = logging.WithSessionID(ctx, "abc")
	ctx = logging.WithKind(ctx, "video")

	logging.FromContext(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sink", entry["component"])
	assert.Equal(t, "abc", entry["session_id"])
	assert.Equal(t, "video", entry["kind"])
	assert.Equal(t, "hello", entry["message"])
}

func TestFromContext_NoLogger(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

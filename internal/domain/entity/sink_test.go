package entity_test

import (
	"testing"

	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSinkKind(t *testing.T) {
	tests := []struct {
		in   string
		want entity.SinkKind
	}{
		{"audio", entity.SinkKindAudio},
		{"Video", entity.SinkKindVideo},
		{" text ", entity.SinkKindText},
		{"subtitle", entity.SinkKindText},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := entity.ParseSinkKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := entity.ParseSinkKind("smell")
	require.ErrorIs(t, err, entity.ErrUnknownSinkKind)
}

func TestSinkKind_Supported(t *testing.T) {
	assert.True(t, entity.SinkKindAudio.Supported())
	assert.True(t, entity.SinkKindVideo.Supported())
	assert.False(t, entity.SinkKindText.Supported())
	assert.False(t, entity.SinkKind(42).Supported())
	assert.Equal(t, "kind(42)", entity.SinkKind(42).String())
}

func TestMediaType_Matches(t *testing.T) {
	tests := []struct {
		name  string
		media entity.MediaType
		kind  entity.SinkKind
		want  bool
	}{
		{"raw audio", "audio/x-raw", entity.SinkKindAudio, true},
		{"native audio", "audio/x-brcm-native", entity.SinkKindAudio, true},
		{"video on audio", "video/x-raw", entity.SinkKindAudio, false},
		{"raw video", "video/x-raw", entity.SinkKindVideo, true},
		{"native video", "video/x-brcm-native", entity.SinkKindVideo, true},
		{"audio on video", "audio/x-raw", entity.SinkKindVideo, false},
		{"mpeg audio lacks x- prefix", "audio/mpeg", entity.SinkKindAudio, false},
		{"text never matches", "text/x-raw", entity.SinkKindText, false},
		{"empty", "", entity.SinkKindAudio, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.media.Matches(tt.kind))
		})
	}
}

func TestMediaType_Kind(t *testing.T) {
	kind, ok := entity.MediaType("video/x-h264").Kind()
	require.True(t, ok)
	assert.Equal(t, entity.SinkKindVideo, kind)

	kind, ok = entity.MediaType("audio/mpeg").Kind()
	require.True(t, ok)
	assert.Equal(t, entity.SinkKindAudio, kind)

	kind, ok = entity.MediaType("application/x-subtitle-vtt").Kind()
	require.True(t, ok)
	assert.Equal(t, entity.SinkKindText, kind)

	_, ok = entity.MediaType("application/x-id3").Kind()
	assert.False(t, ok)

	_, ok = entity.MediaType("garbage").Kind()
	assert.False(t, ok)
}

func TestDisplayGeometry_WindowSet(t *testing.T) {
	g := entity.DefaultDisplayGeometry()
	assert.Equal(t, "0,0,1280,720", g.WindowSet())
	assert.Equal(t, entity.ZoomModeBox, g.ZoomMode)
	assert.True(t, g.Valid())

	assert.False(t, entity.DisplayGeometry{Width: 0, Height: 720}.Valid())
}

func TestScaleVolume(t *testing.T) {
	got, err := entity.ScaleVolume(1.0, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got, 1e-9)

	got, err = entity.ScaleVolume(0.25, 100)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got, 1e-9)

	got, err = entity.ScaleVolume(0.5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)

	_, err = entity.ScaleVolume(1.5, 100)
	require.ErrorIs(t, err, entity.ErrVolumeOutOfRange)
	_, err = entity.ScaleVolume(-0.1, 100)
	require.ErrorIs(t, err, entity.ErrVolumeOutOfRange)
}

func TestLinkState(t *testing.T) {
	assert.False(t, entity.LinkStateUnconfigured.Configured())
	assert.True(t, entity.LinkStateAwaitingPad.Configured())
	assert.False(t, entity.LinkStateAwaitingPad.Settled())
	assert.True(t, entity.LinkStateLinked.Settled())
	assert.True(t, entity.LinkStateRejected.Settled())
	assert.Equal(t, "awaiting-pad", entity.LinkStateAwaitingPad.String())
}

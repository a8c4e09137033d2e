package gstclient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/gstsink/internal/application/port"
	portmocks "github.com/bnema/gstsink/internal/application/port/mocks"
	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
	"github.com/bnema/gstsink/pkg/gstclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestClient_AudioPlaybackFlow(t *testing.T) {
	ctx := testContext()
	profile := entity.NexusProfile()

	factory := portmocks.NewMockElementFactory(t)
	pipeline := portmocks.NewMockPipeline(t)
	srcPad := portmocks.NewMockPad(t)
	decode := portmocks.NewMockElement(t)
	sink := portmocks.NewMockElement(t)
	decodeSinkPad := portmocks.NewMockPad(t)
	decodedPad := portmocks.NewMockPad(t)
	source := portmocks.NewMockStreamSource(t)

	var onPad func(port.Pad)
	factory.EXPECT().Make("decodebin", "audio_decode").Return(decode, nil).Once()
	decode.EXPECT().SetCaps("caps", profile.Audio.Caps).Return(nil).Once()
	decode.EXPECT().OnPadAdded(mock.Anything).
		Run(func(handler func(port.Pad)) { onPad = handler }).
		Return(nil).Once()
	factory.EXPECT().Make("brcmaudiosink", "audio-sink").Return(sink, nil).Once()
	pipeline.EXPECT().Add(decode, sink).Return(nil).Once()
	decode.EXPECT().StaticPad("sink").Return(decodeSinkPad, nil).Once()
	srcPad.EXPECT().Link(decodeSinkPad).Return(nil).Once()
	decode.EXPECT().SyncStateWithParent().Return(nil).Once()
	sink.EXPECT().SyncStateWithParent().Return(nil).Once()

	client := gstclient.New(factory, profile)

	err := client.LinkSink(ctx, entity.SinkKindAudio, pipeline, srcPad)
	require.NoError(t, err)
	assert.Equal(t, gstclient.CodeOK, gstclient.Code(err))
	require.NotNil(t, onPad)

	decodedPad.EXPECT().MediaType().Return("audio/x-raw", nil).Once()
	decode.EXPECT().Link(sink).Return(nil).Once()
	onPad(decodedPad)
	assert.Equal(t, entity.LinkStateLinked, client.Session().State(entity.SinkKindAudio))

	sink.EXPECT().HasProperty("volume").Return(true).Once()
	sink.EXPECT().SetProperty("volume", 50.0).Return(nil).Once()
	applied, err := client.SetVolume(ctx, pipeline, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, applied, 1e-9)

	source.EXPECT().EndOfStream().Return(nil).Once()
	require.NoError(t, client.PostEndOfStream(ctx, source))

	require.NoError(t, client.UnlinkSink(ctx, entity.SinkKindAudio, pipeline))
}

func TestClient_RejectsTextSink(t *testing.T) {
	ctx := testContext()
	client := gstclient.New(portmocks.NewMockElementFactory(t), entity.NexusProfile())

	err := client.LinkSink(ctx, entity.SinkKindText, portmocks.NewMockPipeline(t), portmocks.NewMockPad(t))
	require.ErrorIs(t, err, usecase.ErrUnsupportedKind)
	assert.Equal(t, gstclient.CodeError, gstclient.Code(err))
}

func TestClient_SetVolumeOutOfRange(t *testing.T) {
	ctx := testContext()
	client := gstclient.New(portmocks.NewMockElementFactory(t), entity.NexusProfile())

	_, err := client.SetVolume(ctx, portmocks.NewMockPipeline(t), 1.5)
	require.ErrorIs(t, err, entity.ErrVolumeOutOfRange)
}

func TestClient_PostEndOfStreamEventMode(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockStreamSource(t)
	source.EXPECT().SendEndOfStreamEvent().Return(errors.New("not accepted")).Once()

	client := gstclient.New(portmocks.NewMockElementFactory(t), entity.GenericProfile())

	err := client.PostEndOfStream(ctx, source)
	require.Error(t, err)
	assert.Equal(t, gstclient.CodeError, gstclient.Code(err))
}

func TestClient_Capabilities(t *testing.T) {
	nexus := gstclient.New(portmocks.NewMockElementFactory(t), entity.NexusProfile())
	generic := gstclient.New(portmocks.NewMockElementFactory(t), entity.GenericProfile())

	assert.True(t, nexus.CanReportStalePresentationTimestamps())
	assert.False(t, generic.CanReportStalePresentationTimestamps())

	caps := nexus.Capabilities()
	assert.Equal(t, entity.BackendNexus, caps.Backend)
	assert.Equal(t, entity.EOSModeAppSrc, caps.EOSMode)
}

func TestClient_ResetAllowsNewConfigure(t *testing.T) {
	client := gstclient.New(portmocks.NewMockElementFactory(t), entity.NexusProfile())
	before := client.Session().ID()

	client.Reset()

	assert.NotEqual(t, before, client.Session().ID())
	assert.Equal(t, entity.LinkStateUnconfigured, client.Session().State(entity.SinkKindVideo))
}

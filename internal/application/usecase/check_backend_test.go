package usecase_test

import (
	"testing"

	portmocks "github.com/bnema/gstsink/internal/application/port/mocks"
	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func installed(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(factory string) bool { return set[factory] }
}

func TestCheckBackendUseCase_AllPresent(t *testing.T) {
	ctx := testContext()
	factory := portmocks.NewMockElementFactory(t)
	factory.EXPECT().Available(mock.Anything).
		RunAndReturn(installed("decodebin", "brcmaudiosink", "brcmvideosink", "appsrc", "brcmvideodecoder"))

	uc := usecase.NewCheckBackendUseCase(factory)
	out, err := uc.Execute(ctx, usecase.CheckBackendInput{Profile: entity.NexusProfile()})
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.True(t, out.HWAccel)
	assert.True(t, out.StalePTS)
	assert.Len(t, out.Elements, 5)
	assert.Empty(t, out.Warnings)

	require.NotEmpty(t, out.Decoders)
	assert.Equal(t, "H.264", out.Decoders[0].Codec)
	assert.Equal(t, []string{"brcmvideodecoder"}, out.Decoders[0].Factories)
}

func TestCheckBackendUseCase_MissingSink(t *testing.T) {
	ctx := testContext()
	factory := portmocks.NewMockElementFactory(t)
	factory.EXPECT().Available(mock.Anything).RunAndReturn(installed("decodebin", "autoaudiosink"))

	uc := usecase.NewCheckBackendUseCase(factory)
	out, err := uc.Execute(ctx, usecase.CheckBackendInput{Profile: entity.GenericProfile()})
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.False(t, out.HWAccel)
	// Generic uses EOS events, so appsrc is not required.
	assert.Len(t, out.Elements, 4)
	assert.Contains(t, out.Warnings, `video sink element "autovideosink" is not installed`)
}

package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/gstsink/internal/application/port/mocks"
	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostEndOfStreamUseCase_AppSrcMode(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockStreamSource(t)
	source.EXPECT().EndOfStream().Return(nil).Once()

	uc := usecase.NewPostEndOfStreamUseCase(entity.EOSModeAppSrc)
	require.NoError(t, uc.Execute(ctx, source))
}

func TestPostEndOfStreamUseCase_EventMode(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockStreamSource(t)
	source.EXPECT().SendEndOfStreamEvent().Return(nil).Once()

	uc := usecase.NewPostEndOfStreamUseCase(entity.EOSModeEvent)
	require.NoError(t, uc.Execute(ctx, source))
}

func TestPostEndOfStreamUseCase_Errors(t *testing.T) {
	ctx := testContext()

	uc := usecase.NewPostEndOfStreamUseCase(entity.EOSModeAppSrc)
	require.ErrorIs(t, uc.Execute(ctx, nil), usecase.ErrNoSource)

	flushing := errors.New("flushing")
	source := portmocks.NewMockStreamSource(t)
	source.EXPECT().EndOfStream().Return(flushing).Once()

	err := uc.Execute(ctx, source)
	require.Error(t, err)
	assert.ErrorIs(t, err, flushing)
}

package usecase_test

import (
	"testing"

	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestQueryCapabilitiesUseCase(t *testing.T) {
	nexus := usecase.NewQueryCapabilitiesUseCase(entity.NexusProfile())
	assert.True(t, nexus.CanReportStalePTS())

	out := nexus.Execute()
	assert.Equal(t, entity.BackendNexus, out.Backend)
	assert.True(t, out.CanReportStalePTS)
	assert.InDelta(t, 100.0, out.VolumeScale, 1e-9)
	assert.Equal(t, entity.EOSModeAppSrc, out.EOSMode)

	generic := usecase.NewQueryCapabilitiesUseCase(entity.GenericProfile())
	assert.False(t, generic.CanReportStalePTS())
}

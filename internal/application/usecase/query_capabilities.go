package usecase

import "github.com/bnema/gstsink/internal/domain/entity"

// QueryCapabilitiesUseCase answers static questions about the back end.
// Answers depend on the profile only, never on pipeline or session state.
type QueryCapabilitiesUseCase struct {
	profile entity.BackendProfile
}

func NewQueryCapabilitiesUseCase(profile entity.BackendProfile) *QueryCapabilitiesUseCase {
	return &QueryCapabilitiesUseCase{profile: profile}
}

type CapabilitiesOutput struct {
	Backend           string
	CanReportStalePTS bool
	VolumeScale       float64
	EOSMode           entity.EOSMode
}

func (uc *QueryCapabilitiesUseCase) Execute() CapabilitiesOutput {
	return CapabilitiesOutput{
		Backend:           uc.profile.Name,
		CanReportStalePTS: uc.profile.CanReportStalePTS,
		VolumeScale:       uc.profile.VolumeScale,
		EOSMode:           uc.profile.EOSMode,
	}
}

// CanReportStalePTS reports whether the sinks tolerate presentation
// timestamps older than the current position.
func (uc *QueryCapabilitiesUseCase) CanReportStalePTS() bool {
	return uc.profile.CanReportStalePTS
}

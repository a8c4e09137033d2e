package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

var ErrNoVolumeTarget = errors.New("no audio element accepts a volume")

// SetVolumeUseCase scales a normalized volume for the back end and writes
// it to the audio sink.
type SetVolumeUseCase struct {
	session *SinkSession
}

func NewSetVolumeUseCase(session *SinkSession) *SetVolumeUseCase {
	return &SetVolumeUseCase{session: session}
}

type SetVolumeInput struct {
	Pipeline port.Pipeline
	// Volume is normalized to [0.0, 1.0].
	Volume float64
}

type SetVolumeOutput struct {
	// Applied is the value written to the element, after scaling.
	Applied  float64
	Property string
}

// Execute applies the volume to the session's audio sink, or to the
// pipeline element carrying the profile's audio sink name when the
// session has not configured audio yet.
func (uc *SetVolumeUseCase) Execute(ctx context.Context, input SetVolumeInput) (*SetVolumeOutput, error) {
	profile := uc.session.Profile()

	scaled, err := entity.ScaleVolume(input.Volume, profile.VolumeScale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, input.Volume)
	}

	target, err := uc.target(input.Pipeline, profile)
	if err != nil {
		return nil, err
	}

	if err := target.SetProperty(profile.VolumeProperty, scaled); err != nil {
		return nil, fmt.Errorf("set %s: %w", profile.VolumeProperty, err)
	}

	logging.FromContext(ctx).Debug().
		Float64("volume", input.Volume).
		Float64("applied", scaled).
		Msg("volume applied")

	return &SetVolumeOutput{Applied: scaled, Property: profile.VolumeProperty}, nil
}

func (uc *SetVolumeUseCase) target(pipeline port.Pipeline, profile entity.BackendProfile) (port.Element, error) {
	if profile.VolumeProperty == "" {
		return nil, fmt.Errorf("%w: profile %q names no volume property", ErrNoVolumeTarget, profile.Name)
	}

	if sink := uc.session.Sink(entity.SinkKindAudio); sink != nil {
		if sink.HasProperty(profile.VolumeProperty) {
			return sink, nil
		}
		return nil, fmt.Errorf("%w: audio sink has no %q property", ErrNoVolumeTarget, profile.VolumeProperty)
	}

	if pipeline == nil {
		return nil, fmt.Errorf("%w: audio sink not configured", ErrNoVolumeTarget)
	}
	elem, err := pipeline.ElementByName(profile.Audio.SinkName)
	if err != nil || elem == nil {
		return nil, fmt.Errorf("%w: no element named %q", ErrNoVolumeTarget, profile.Audio.SinkName)
	}
	if !elem.HasProperty(profile.VolumeProperty) {
		return nil, fmt.Errorf("%w: %q has no %q property", ErrNoVolumeTarget, profile.Audio.SinkName, profile.VolumeProperty)
	}
	return elem, nil
}

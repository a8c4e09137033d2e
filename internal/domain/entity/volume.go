package entity

import (
	"errors"
	"math"
)

var ErrVolumeOutOfRange = errors.New("volume out of range [0.0, 1.0]")

// ScaleVolume converts a normalized volume into the unit expected by the
// audio output. Hardware back ends that take a percentage use scale 100.
func ScaleVolume(volume, scale float64) (float64, error) {
	if volume < 0 || volume > 1 || math.IsNaN(volume) {
		return 0, ErrVolumeOutOfRange
	}
	return volume * scale, nil
}

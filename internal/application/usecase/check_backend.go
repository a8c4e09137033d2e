package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

// hardwareDecoders lists decoder factories that indicate hardware
// acceleration, grouped by codec.
var hardwareDecoders = []struct {
	Codec     string
	Factories []string
}{
	{"H.264", []string{"brcmvideodecoder", "vah264dec", "vaapih264dec", "nvh264dec", "v4l2h264dec"}},
	{"H.265", []string{"vah265dec", "vaapih265dec", "nvh265dec", "v4l2h265dec"}},
	{"VP9", []string{"vavp9dec", "vaapivp9dec", "nvvp9dec", "v4l2vp9dec"}},
	{"AV1", []string{"vaav1dec", "vaapiav1dec", "nvav1dec", "v4l2av1dec"}},
	{"Audio", []string{"brcmaudiodecoder"}},
}

// CheckBackendUseCase verifies that the elements of a back end profile can
// be instantiated and reports available hardware decoders.
type CheckBackendUseCase struct {
	factory port.ElementFactory
}

// NewCheckBackendUseCase creates a new CheckBackendUseCase.
func NewCheckBackendUseCase(factory port.ElementFactory) *CheckBackendUseCase {
	return &CheckBackendUseCase{factory: factory}
}

// CheckBackendInput contains options for the back end check.
type CheckBackendInput struct {
	Profile entity.BackendProfile
}

// ElementCheck is the availability of one required element factory.
type ElementCheck struct {
	Role      string
	Factory   string
	Available bool
}

// DecoderCheck lists the hardware decoders found for a codec.
type DecoderCheck struct {
	Codec     string
	Factories []string
}

// CheckBackendOutput contains the result of the back end check.
type CheckBackendOutput struct {
	Backend  string
	OK       bool
	Elements []ElementCheck
	Decoders []DecoderCheck
	HWAccel  bool
	StalePTS bool
	Warnings []string
}

// Execute checks every element factory the profile needs.
// A missing factory is reported, not returned as an error.
func (uc *CheckBackendUseCase) Execute(ctx context.Context, input CheckBackendInput) (*CheckBackendOutput, error) {
	log := logging.FromContext(ctx)
	p := input.Profile

	out := &CheckBackendOutput{Backend: p.Name, OK: true, StalePTS: p.CanReportStalePTS}

	required := []struct{ role, factory string }{
		{"audio decode", p.Audio.DecodeFactory},
		{"audio sink", p.Audio.SinkFactory},
		{"video decode", p.Video.DecodeFactory},
		{"video sink", p.Video.SinkFactory},
	}
	if p.EOSMode == entity.EOSModeAppSrc {
		required = append(required, struct{ role, factory string }{"push source", "appsrc"})
	}

	for _, r := range required {
		ok := uc.factory.Available(r.factory)
		out.Elements = append(out.Elements, ElementCheck{Role: r.role, Factory: r.factory, Available: ok})
		if !ok {
			out.OK = false
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s element %q is not installed", r.role, r.factory))
		}
	}

	for _, group := range hardwareDecoders {
		check := DecoderCheck{Codec: group.Codec}
		for _, f := range group.Factories {
			if uc.factory.Available(f) {
				check.Factories = append(check.Factories, f)
			}
		}
		if len(check.Factories) > 0 {
			out.HWAccel = true
		}
		out.Decoders = append(out.Decoders, check)
	}
	if !out.HWAccel {
		out.Warnings = append(out.Warnings, "no hardware decoder found, decodebin will fall back to software decoding")
	}

	log.Info().
		Str("backend", p.Name).
		Bool("ok", out.OK).
		Bool("hw_accel", out.HWAccel).
		Msg("backend check complete")

	return out, nil
}

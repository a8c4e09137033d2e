package port

import (
	"context"
	"errors"
)

var (
	ErrPkgConfigMissing = errors.New("pkg-config not found in PATH")
	ErrModuleMissing    = errors.New("pkg-config module not found")
)

// ModuleProbeError reports a failed pkg-config lookup for one module.
// Err is ErrPkgConfigMissing or ErrModuleMissing.
type ModuleProbeError struct {
	Module string
	Output string
	Err    error
}

func (e *ModuleProbeError) Error() string {
	if e.Output == "" {
		return e.Module + ": " + e.Err.Error()
	}
	return e.Module + ": " + e.Err.Error() + ": " + e.Output
}

func (e *ModuleProbeError) Unwrap() error {
	return e.Err
}

// RuntimeVersionProbe reports the installed version of a pkg-config module.
// A non-empty prefix points at a GStreamer install outside the system paths.
type RuntimeVersionProbe interface {
	ModuleVersion(ctx context.Context, module, prefix string) (string, error)
}

package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/gstsink/internal/application/port"
)

// PkgConfigProbe runs `pkg-config --modversion` with the prefix applied to
// the child environment.
type PkgConfigProbe struct {
	binary string
}

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{binary: "pkg-config"}
}

func (p *PkgConfigProbe) ModuleVersion(ctx context.Context, module, prefix string) (string, error) {
	bin, err := exec.LookPath(p.binary)
	if err != nil {
		return "", &port.ModuleProbeError{Module: module, Err: port.ErrPkgConfigMissing}
	}

	cmd := exec.CommandContext(ctx, bin, "--modversion", module)
	cmd.Env = CommandEnvWithPrefix(prefix)

	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return "", &port.ModuleProbeError{Module: module, Output: text, Err: port.ErrModuleMissing}
	}
	return text, nil
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/logging"
)

const (
	defaultMinGStreamerVersion = "1.20"
	defaultMinGLibVersion      = "2.70"
)

// runtimeDependencies are the libraries the GStreamer adapter links against.
var runtimeDependencies = []struct {
	pkgConfigName string
	displayName   string
	glib          bool
}{
	{"gstreamer-1.0", "GStreamer", false},
	{"gstreamer-base-1.0", "GStreamer base", false},
	{"gstreamer-app-1.0", "GStreamer app", false},
	{"glib-2.0", "GLib", true},
	{"gobject-2.0", "GObject", true},
}

// RuntimeDependencyStatus contains the result of checking a runtime dependency.
type RuntimeDependencyStatus struct {
	PkgConfigName string
	DisplayName   string

	Installed bool
	Version   string

	RequiredVersion  string
	MeetsRequirement bool

	Error string
}

// CheckRuntimeDependenciesUseCase checks the versions of the libraries the
// GStreamer adapter needs.
type CheckRuntimeDependenciesUseCase struct {
	probe port.RuntimeVersionProbe
}

// NewCheckRuntimeDependenciesUseCase creates a new use case.
func NewCheckRuntimeDependenciesUseCase(probe port.RuntimeVersionProbe) *CheckRuntimeDependenciesUseCase {
	return &CheckRuntimeDependenciesUseCase{probe: probe}
}

// CheckRuntimeDependenciesInput contains options for runtime dependency checks.
type CheckRuntimeDependenciesInput struct {
	// Prefix optionally points to a GStreamer install outside the system paths.
	Prefix string

	// Min versions. If empty, defaults are used.
	MinGStreamerVersion string
	MinGLibVersion      string
}

// CheckRuntimeDependenciesOutput contains the result of the runtime dependency checks.
type CheckRuntimeDependenciesOutput struct {
	Prefix string
	OK     bool
	Checks []RuntimeDependencyStatus
}

// Execute checks GStreamer and GLib versions.
func (uc *CheckRuntimeDependenciesUseCase) Execute(ctx context.Context, input CheckRuntimeDependenciesInput) (*CheckRuntimeDependenciesOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "runtime-check").Logger()

	minGst := input.MinGStreamerVersion
	if minGst == "" {
		minGst = defaultMinGStreamerVersion
	}
	minGLib := input.MinGLibVersion
	if minGLib == "" {
		minGLib = defaultMinGLibVersion
	}

	checks := make([]RuntimeDependencyStatus, 0, len(runtimeDependencies))
	for _, dep := range runtimeDependencies {
		required := minGst
		if dep.glib {
			required = minGLib
		}
		checks = append(checks, RuntimeDependencyStatus{
			PkgConfigName:   dep.pkgConfigName,
			DisplayName:     dep.displayName,
			RequiredVersion: required,
		})
	}

	allOK := true
	for i := range checks {
		status := &checks[i]

		version, err := uc.probe.ModuleVersion(ctx, status.PkgConfigName, input.Prefix)
		if err != nil {
			status.Error = err.Error()
			allOK = false
			continue
		}

		status.Installed = true
		status.Version = strings.TrimSpace(version)

		cmp, ok := CompareVersion(status.Version, status.RequiredVersion)
		if !ok {
			status.Error = "could not parse version"
			allOK = false
			continue
		}

		status.MeetsRequirement = cmp >= 0
		if !status.MeetsRequirement {
			allOK = false
		}
	}

	log.Debug().Bool("ok", allOK).Str("prefix", input.Prefix).Msg("runtime dependency check complete")
	return &CheckRuntimeDependenciesOutput{Prefix: input.Prefix, OK: allOK, Checks: checks}, nil
}

// CompareVersion compares the dotted numeric prefixes of two versions and
// returns -1, 0 or 1. Missing components count as zero.
func CompareVersion(a, b string) (int, bool) {
	av, ok := versionParts(a)
	if !ok {
		return 0, false
	}
	bv, ok := versionParts(b)
	if !ok {
		return 0, false
	}
	for len(av) < len(bv) {
		av = append(av, 0)
	}
	for len(bv) < len(av) {
		bv = append(bv, 0)
	}
	for i := range av {
		if av[i] != bv[i] {
			if av[i] > bv[i] {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

// versionParts reads the leading "N.N.N" of s, ignoring any suffix such
// as "-rc1".
func versionParts(s string) ([]int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if end >= 0 {
		s = s[:end]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}

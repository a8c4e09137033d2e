package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstsink/internal/application/usecase"
)

type fakePaths struct {
	man, docs string
	err       error
}

func (f fakePaths) ConfigDir() (string, error) { return "/cfg", f.err }
func (f fakePaths) ManDir() (string, error)    { return f.man, f.err }
func (f fakePaths) DocsDir() (string, error)   { return f.docs, f.err }

func TestDefaultDocsDir(t *testing.T) {
	paths := fakePaths{man: "/share/man/man1", docs: "/share/doc/gstsink"}

	dir, err := defaultDocsDir(paths, "man")
	require.NoError(t, err)
	assert.Equal(t, "/share/man/man1", dir)

	dir, err = defaultDocsDir(paths, "markdown")
	require.NoError(t, err)
	assert.Equal(t, "/share/doc/gstsink", dir)

	_, err = defaultDocsDir(paths, "html")
	require.Error(t, err)

	_, err = defaultDocsDir(fakePaths{err: errors.New("no home")}, "man")
	require.ErrorContains(t, err, "no home")
}

func TestGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"gstsink-play.1", "gstsink.1", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.1"), 0o700))

	assert.Equal(t, []string{"gstsink-play.1", "gstsink.1"}, generatedFiles(dir, ".1"))
	assert.Equal(t, []string{"notes.md"}, generatedFiles(dir, ".md"))
	assert.Nil(t, generatedFiles(filepath.Join(dir, "missing"), ".1"))
}

func TestDoctorReport(t *testing.T) {
	out := &usecase.CheckBackendOutput{
		Backend: "generic",
		OK:      false,
		Elements: []usecase.ElementCheck{
			{Role: "video sink", Factory: "autovideosink", Available: false},
		},
		Decoders: []usecase.DecoderCheck{{Codec: "VP9", Factories: []string{"vavp9dec"}}},
		HWAccel:  true,
		Warnings: []string{"missing"},
	}

	report := doctorReport(out)

	assert.False(t, report.OverallOK)
	assert.Equal(t, "generic", report.Backend)
	require.Len(t, report.Elements, 1)
	assert.Equal(t, "autovideosink", report.Elements[0].Factory)
	assert.False(t, report.Elements[0].Available)
	require.Len(t, report.Decoders, 1)
	assert.Equal(t, []string{"vavp9dec"}, report.Decoders[0].Factories)
	assert.True(t, report.HWAccel)
	assert.Equal(t, []string{"missing"}, report.Warnings)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "doctor", "config", "caps", "about", "gen-docs"} {
		assert.True(t, names[want], want)
	}
}

func TestRuntimeReport(t *testing.T) {
	out := &usecase.CheckRuntimeDependenciesOutput{
		Prefix: "/opt/gst",
		OK:     false,
		Checks: []usecase.RuntimeDependencyStatus{
			{PkgConfigName: "gstreamer-1.0", DisplayName: "GStreamer", Installed: true, Version: "1.18.0", RequiredVersion: "1.20"},
		},
	}

	report := runtimeReport(out)

	assert.Equal(t, "/opt/gst", report.Prefix)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, "GStreamer", report.Checks[0].Name)
	assert.True(t, report.Checks[0].Installed)
	assert.False(t, report.Checks[0].OK)
}

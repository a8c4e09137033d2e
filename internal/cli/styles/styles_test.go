package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstsink/internal/cli/styles"
	"github.com/bnema/gstsink/internal/domain/build"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK: false,
		Backend:   "nexus",
		Elements: []styles.DoctorElement{
			{Role: "audio sink", Factory: "brcmaudiosink", Available: false},
			{Role: "audio decode", Factory: "decodebin", Available: true},
		},
		Decoders: []styles.DoctorDecoder{{Codec: "H.264", Factories: []string{"vah264dec"}}},
		HWAccel:  true,
		Warnings: []string{`audio sink element "brcmaudiosink" is not installed`},
	})

	require.Contains(t, out, "Doctor")
	require.Contains(t, out, "nexus")
	require.Contains(t, out, "Needs attention")
	require.Contains(t, out, "brcmaudiosink")
	require.Contains(t, out, "Missing")
	require.Contains(t, out, "vah264dec")
	require.Contains(t, out, "Warnings")
	require.NotContains(t, out, "Runtime")
}

func TestDoctorRenderer_Runtime(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK: false,
		Backend:   "generic",
		Runtime: &styles.DoctorRuntimeReport{
			Prefix: "/opt/gst",
			Checks: []styles.DoctorRuntimeCheck{
				{Name: "GStreamer", Installed: true, Version: "1.18.4", RequiredVersion: "1.20"},
				{Name: "GStreamer app", Installed: false, Error: "pkg-config package missing"},
				{Name: "GLib", Installed: true, OK: true, Version: "2.80.0", RequiredVersion: "2.70"},
			},
		},
	})

	require.Contains(t, out, "Runtime")
	require.Contains(t, out, "/opt/gst")
	require.Contains(t, out, "have 1.18.4, need >= 1.20")
	require.Contains(t, out, "pkg-config package missing")
	require.Contains(t, out, "2.80.0 (>= 2.70)")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigPath("/tmp/gstsink/config.toml", "generic")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "generic")

	assert.Contains(t, r.RenderExists("/tmp/gstsink/config.toml"), "--force")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestPlaybackRenderer_Summary(t *testing.T) {
	r := styles.NewPlaybackRenderer(styles.NewTheme())

	out := r.RenderSummary(styles.PlaybackSummary{
		Path:     "tone.wav",
		Elapsed:  1500 * time.Millisecond,
		Chunks:   50,
		Bytes:    176400,
		Duration: time.Second,
	})
	assert.Contains(t, out, "tone.wav")
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "50 chunks, 176400 bytes")

	failed := r.RenderSummary(styles.PlaybackSummary{Path: "broken.mkv", Err: errors.New("no decoder")})
	assert.Contains(t, failed, "failed")
	assert.Contains(t, failed, "no decoder")
	assert.NotContains(t, failed, "chunks")
}

func TestPlaybackRenderer_Capabilities(t *testing.T) {
	r := styles.NewPlaybackRenderer(styles.NewTheme())

	out := r.RenderCapabilities(styles.CapabilitiesView{Backend: "nexus", StalePTS: true, VolumeScale: 100, EOSMode: "appsrc"})
	assert.Contains(t, out, "nexus")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "appsrc")
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "abc1234", BuildDate: "2026-01-01", GoVersion: "go1.25.3"})
	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, build.RepoURL())
}

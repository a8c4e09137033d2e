package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CapabilitiesView is what `gstsink caps` prints.
type CapabilitiesView struct {
	Backend     string
	StalePTS    bool
	VolumeScale float64
	EOSMode     string
}

// PlaybackSummary describes a finished playback.
type PlaybackSummary struct {
	Path     string
	Mode     string
	Elapsed  time.Duration
	Chunks   int
	Bytes    int64
	Duration time.Duration
	Err      error
}

// PlaybackRenderer renders capability and playback output.
type PlaybackRenderer struct {
	theme *Theme
}

func NewPlaybackRenderer(theme *Theme) *PlaybackRenderer {
	return &PlaybackRenderer{theme: theme}
}

func (r *PlaybackRenderer) RenderCapabilities(v CapabilitiesView) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Backend"), r.theme.Highlight.Render(v.Backend)),
		r.theme.statusLine(v.StalePTS, "Stale PTS", statusYes, statusNo),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Volume scale"), r.theme.Normal.Render(strconv.FormatFloat(v.VolumeScale, 'g', -1, 64))),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("End of stream"), r.theme.Normal.Render(v.EOSMode)),
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Capabilities", r.theme.Highlight.Render(IconInfo)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *PlaybackRenderer) RenderStart(path, mode string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(IconPlay), r.theme.Normal.Render(path), r.theme.BadgeMuted.Render(mode))
}

func (r *PlaybackRenderer) RenderSummary(s PlaybackSummary) string {
	icon, style, status := IconStop, r.theme.SuccessStyle, "finished"
	if s.Err != nil {
		icon, style, status = IconX, r.theme.ErrorStyle, "failed"
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", style.Render(icon), r.theme.Normal.Render(s.Path), style.Render(status)),
		fmt.Sprintf("  %s %s %s", r.theme.Subtle.Render(IconClock), r.theme.Subtle.Render("elapsed"), r.theme.Normal.Render(s.Elapsed.Round(time.Millisecond).String())),
	}
	if s.Chunks > 0 {
		lines = append(lines, fmt.Sprintf(
			"  %s %s",
			r.theme.Subtle.Render(IconAudio),
			r.theme.Normal.Render(fmt.Sprintf("%d chunks, %d bytes, %s of audio", s.Chunks, s.Bytes, s.Duration.Round(time.Millisecond))),
		))
	}
	if s.Err != nil {
		lines = append(lines, "  "+r.theme.ErrorStyle.Render(s.Err.Error()))
	}
	return strings.Join(lines, "\n")
}

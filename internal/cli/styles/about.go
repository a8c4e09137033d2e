package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gstsink/internal/domain/build"
)

const aboutLogo = `┌─┐┌─┐┌┬┐
│ ┬└─┐ │
└─┘└─┘ ┴ sink`

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginLeft(2).
		Render(aboutLogo)

	return lipgloss.JoinVertical(lipgloss.Left, logo, "", r.renderFields(info))
}

func (r *AboutRenderer) renderFields(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	fields := []struct{ glyph, key, value string }{
		{IconVersion, "version", info.Version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
		{IconGithub, "source", build.RepoURL()},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("  %s %-8s %s",
			icon.Render(f.glyph), r.theme.Subtle.Render(f.key), r.theme.Highlight.Render(f.value)))
	}
	return strings.Join(lines, "\n")
}

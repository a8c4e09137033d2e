package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Runtime   *DoctorRuntimeReport
	Backend   string
	Elements  []DoctorElement
	Decoders  []DoctorDecoder
	HWAccel   bool
	StalePTS  bool
	Warnings  []string
}

type DoctorRuntimeReport struct {
	Prefix string
	OK     bool
	Checks []DoctorRuntimeCheck
}

type DoctorRuntimeCheck struct {
	Name            string
	PkgConfigName   string
	Installed       bool
	Version         string
	RequiredVersion string
	OK              bool
	Error           string
}

type DoctorElement struct {
	Role      string
	Factory   string
	Available bool
}

type DoctorDecoder struct {
	Codec     string
	Factories []string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK, report.Backend)

	sections := []string{}
	if report.Runtime != nil {
		sections = append(sections, r.renderRuntime(*report.Runtime))
	}
	sections = append(sections, r.renderElements(report.Elements), r.renderDecoders(report))
	if len(report.Warnings) > 0 {
		sections = append(sections, r.renderWarnings(report.Warnings))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool, backend string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	backendBadge := r.theme.Badge.Render(backend)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", backendBadge, " ", badge)
}

func (r *DoctorRenderer) renderRuntime(rt DoctorRuntimeReport) string {
	lines := make([]string, 0, len(rt.Checks)+1)

	if strings.TrimSpace(rt.Prefix) != "" {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.Subtle.Render("Prefix"),
			r.theme.Normal.Render(rt.Prefix),
			r.theme.Subtle.Render("(gstreamer.prefix)"),
		))
	}

	for _, c := range rt.Checks {
		lines = append(lines, r.renderRuntimeCheck(c))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Runtime", r.theme.Highlight.Render(IconPackage)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderRuntimeCheck(c DoctorRuntimeCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"

	var summary string
	switch {
	case !c.Installed:
		icon = IconX
		statusStyle = r.theme.ErrorStyle
		status = "Missing"
		summary = c.Error
	case !c.OK:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "Too old"
		summary = fmt.Sprintf("have %s, need >= %s", c.Version, c.RequiredVersion)
		if c.Error != "" {
			summary = c.Error
		}
	default:
		summary = fmt.Sprintf("%s (>= %s)", c.Version, c.RequiredVersion)
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	info := r.theme.Subtle.Render(summary)

	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, info)
}

func (r *DoctorRenderer) renderElements(elements []DoctorElement) string {
	lines := make([]string, 0, len(elements))
	for _, e := range elements {
		icon, style, status := IconCheck, r.theme.SuccessStyle, "OK"
		if !e.Available {
			icon, style, status = IconX, r.theme.ErrorStyle, "Missing"
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s %s",
			style.Render(icon),
			r.theme.Subtle.Render(e.Role),
			r.theme.Normal.Render(e.Factory),
			r.theme.BadgeMuted.Render(style.Render(status)),
		))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Elements", r.theme.Highlight.Render(IconAudio)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderDecoders(report DoctorReport) string {
	lines := []string{
		r.theme.statusLine(report.HWAccel, "HW decode", statusYes, statusNo),
		r.theme.statusLine(report.StalePTS, "Stale PTS", statusYes, statusNo),
		"",
	}

	for _, d := range report.Decoders {
		found := r.theme.WarningStyle.Render("none")
		if len(d.Factories) > 0 {
			found = r.theme.SuccessStyle.Render(strings.Join(d.Factories, ", "))
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s", r.theme.Subtle.Render("•"), d.Codec, found))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Decoders", r.theme.Highlight.Render(IconVideo)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderWarnings(warnings []string) string {
	lines := make([]string, 0, len(warnings)+1)
	lines = append(lines, r.theme.WarningStyle.Render("Warnings"))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
	}
	return strings.Join(lines, "\n")
}

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatdesk/internal/domain/build"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

const aboutLogo = `╭────┬─╮
│    │×│
│  ╭─┴─┴──╮
╰──┤      │
   ╰──────╯`

// AboutRenderer draws the logo next to the build facts.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render returns the about screen for info.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.facts(info))
}

func (r *AboutRenderer) facts(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	rows := []struct{ icon, label, value string }{
		{IconVersion, "Version", orUnknown(info.Version)},
		{IconGitBranch, "Commit", orUnknown(info.Commit)},
		{IconCalendar, "Built", orUnknown(info.BuildDate)},
		{IconGo, "Go", orUnknown(info.GoVersion)},
		{IconConfig, "Layout format", fmt.Sprintf("v%d", entity.LayoutVersion)},
	}

	lines := []string{r.theme.Title.Render(info.Short()), ""}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %-13s %s",
			icon.Render(row.icon), r.theme.Subtle.Render(row.label), r.theme.Highlight.Render(row.value)))
	}
	lines = append(lines, "",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("by ")+r.theme.Highlight.Render(strings.Join(build.Authors(), ", ")),
	)
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

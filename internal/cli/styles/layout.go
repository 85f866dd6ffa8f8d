package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// LayoutRenderer renders stored layouts for the layout commands.
type LayoutRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme, now: time.Now}
}

// RenderList renders one line per stored slot, marking the active one.
func (r *LayoutRenderer) RenderList(infos []entity.LayoutInfo, activeSlot string) string {
	if len(infos) == 0 {
		return r.theme.Subtle.Render("  No stored layouts") + "\n"
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n", iconStyle.Render(IconDatabase), r.theme.Title.Render("Stored layouts")))

	for _, info := range infos {
		marker := "  "
		slot := r.theme.Normal.Render(info.Slot)
		if info.Slot == activeSlot {
			marker = iconStyle.Render(IconCursor) + " "
			slot = r.theme.Highlight.Render(info.Slot)
		}
		sb.WriteString(fmt.Sprintf("  %s%-20s %s %s  %s\n",
			marker,
			slot,
			r.theme.Badge.Render(fmt.Sprintf("%d panels", info.PanelCount)),
			r.theme.BadgeMuted.Render(fmt.Sprintf("%d minimized", info.Minimized)),
			r.theme.Subtle.Render(r.relative(info.UpdatedAt)),
		))
	}
	return sb.String()
}

// RenderLayout renders every panel record of a layout.
func (r *LayoutRenderer) RenderLayout(slot string, layout *entity.Layout) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconPane),
		r.theme.Title.Render("Layout "+slot),
		r.theme.Subtle.Render(fmt.Sprintf("v%d, saved %s", layout.Version, r.relative(layout.Timestamp))),
	)

	if layout.PanelCount() == 0 {
		return r.theme.Box.Render(header + "\n\n" + r.theme.Subtle.Render("Empty desk"))
	}

	lines := make([]string, 0, len(layout.Panels))
	for i, p := range layout.Panels {
		lines = append(lines, r.renderRecord(i+1, p))
	}
	return r.theme.Box.Render(header + "\n\n" + strings.Join(lines, "\n"))
}

func (r *LayoutRenderer) renderRecord(n int, p entity.PanelRecord) string {
	geometry := "auto"
	if p.Position != nil && p.Size != nil {
		geometry = fmt.Sprintf("%dx%d at %d,%d", p.Size.Width, p.Size.Height, p.Position.X, p.Position.Y)
	}
	contentType := p.ContentType
	if contentType == "" {
		contentType = "inline"
	}

	line := fmt.Sprintf("%2d. %s  %s  %s  %s",
		n,
		r.theme.Normal.Bold(true).Render(p.Title),
		r.stateBadge(p.State),
		r.theme.Subtle.Render(geometry),
		r.theme.HelpKey.Render(contentType),
	)
	if p.ActiveTab > 0 {
		line += r.theme.Subtle.Render(fmt.Sprintf("  tab %d", p.ActiveTab+1))
	}
	return line
}

func (r *LayoutRenderer) stateBadge(state entity.PanelState) string {
	switch state {
	case entity.PanelMinimized:
		return r.theme.BadgeMuted.Render(IconMinimize + " " + state.String())
	case entity.PanelMaximized:
		return r.theme.Badge.Render(IconMaximize + " " + state.String())
	default:
		return r.theme.Subtle.Render(state.String())
	}
}

func (r *LayoutRenderer) relative(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := r.now().Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Local().Format("2006-01-02 15:04")
	}
}

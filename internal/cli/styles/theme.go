// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.Palette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Component styles
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	// Desk styles
	Desk               lipgloss.Style
	Band               lipgloss.Style
	PanelHeader        lipgloss.Style
	PanelHeaderFocused lipgloss.Style
	PanelHeaderMoving  lipgloss.Style
	PanelBody          lipgloss.Style
	PanelBodyFocused   lipgloss.Style
	PanelEdge          lipgloss.Style
	PanelClosing       lipgloss.Style
	Control            lipgloss.Style
	ControlClose       lipgloss.Style
	TrayItem           lipgloss.Style
	PanelTab           lipgloss.Style
	PanelTabActive     lipgloss.Style
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() config.Palette {
	return config.DefaultConfig().Appearance.DarkPalette
}

// TerminalIsLight reports whether the terminal background is light.
func TerminalIsLight() bool {
	return !termenv.HasDarkBackground()
}

// NewTheme creates a Theme for the configured color scheme.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		return NewThemeFromPalette(DefaultDarkPalette())
	}
	light := false
	if cfg.Appearance.ColorScheme == config.ColorSchemeAuto {
		light = TerminalIsLight()
	}
	p := cfg.Appearance.Palette(light)
	if p.Background == "" {
		p = DefaultDarkPalette()
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p config.Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// Tab styles
	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	// Desk cells are styled one by one, so none of these pad or border.
	t.Desk = lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Background)

	t.Band = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.PanelHeader = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.SurfaceVariant)

	t.PanelHeaderFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Bold(true)

	t.PanelHeaderMoving = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.PanelBody = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.PanelBodyFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	t.PanelEdge = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	t.PanelClosing = lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Background).
		Faint(true)

	t.Control = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant)

	t.ControlClose = lipgloss.NewStyle().
		Foreground(t.Error).
		Background(t.SurfaceVariant)

	t.TrayItem = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant)

	t.PanelTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.PanelTabActive = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Underline(true)
}

// NoticeStyle returns the style for a notification of the given type.
func (t *Theme) NoticeStyle(kind port.NotificationType) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch kind {
	case port.NotificationSuccess:
		return base.Foreground(t.Background).Background(t.Success)
	case port.NotificationError:
		return base.Foreground(t.Text).Background(t.Error)
	case port.NotificationWarning:
		return base.Foreground(t.Background).Background(t.Warning)
	default:
		return base.Foreground(t.Background).Background(t.Accent)
	}
}

// NoticeIcon returns the icon shown in front of a notification.
func NoticeIcon(kind port.NotificationType) string {
	switch kind {
	case port.NotificationSuccess:
		return IconCheck
	case port.NotificationError:
		return IconX
	case port.NotificationWarning:
		return IconWarning
	default:
		return IconInfo
	}
}

// RenderNotice renders a one-line notification.
func (t *Theme) RenderNotice(kind port.NotificationType, msg string) string {
	return t.NoticeStyle(kind).Render(NoticeIcon(kind) + " " + msg)
}

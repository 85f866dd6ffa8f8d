package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DeskKeyMap defines the terminal desk's own keybindings. Panel shortcuts
// (cycle, nudge, quick select) come from the keyboard config section and
// are handled by the engine.
type DeskKeyMap struct {
	NewNote     key.Binding
	NewPanel    key.Binding
	NewHelp     key.Binding
	Close       key.Binding
	Maximize    key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Fit         key.Binding
	MinimizeAll key.Binding
	Save        key.Binding
	Export      key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DeskKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewPanel, k.Close, k.Fit, k.MinimizeAll, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DeskKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewNote, k.NewPanel, k.NewHelp, k.Close},
		{k.Maximize, k.NextTab, k.PrevTab},
		{k.Fit, k.MinimizeAll},
		{k.Save, k.Export, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultDeskKeyMap returns the default desk keybindings.
func DefaultDeskKeyMap() DeskKeyMap {
	return DeskKeyMap{
		NewNote: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new note"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "new panel"),
		),
		NewHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("M-enter", "maximize"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		Fit: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "fit all"),
		),
		MinimizeAll: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "minimize all"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset desk"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

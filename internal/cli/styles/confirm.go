package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmOutcome int

const (
	confirmPending confirmOutcome = iota
	confirmAnswered
	confirmCanceled
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Accept, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel asks a yes/no question. "No" is preselected.
type ConfirmModel struct {
	prompt  string
	yes     bool
	outcome confirmOutcome
	keys    ConfirmKeyMap
	help    help.Model
	theme   *Theme
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(theme *Theme, prompt string) ConfirmModel {
	return ConfirmModel{
		prompt: prompt,
		keys:   DefaultConfirmKeyMap(),
		help:   NewStyledHelp(theme),
		theme:  theme,
	}
}

// Init implements tea.Model.
func (ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles one key. Keys after the dialog is done are ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.outcome != confirmPending {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		m.yes = true
	case key.Matches(k, m.keys.No):
		m.yes = false
	case key.Matches(k, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(k, m.keys.Accept):
		m.outcome = confirmAnswered
	case key.Matches(k, m.keys.Cancel):
		m.outcome = confirmCanceled
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme
	button := func(label string, selected bool) string {
		if selected {
			return t.ActiveTab.Render(" " + label + " ")
		}
		return t.InactiveTab.Render(" " + label + " ")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, button("No", !m.yes), "  ", button("Yes", m.yes))
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(m.prompt),
		"",
		buttons,
		"",
		m.help.View(m.keys),
	))
}

// Done reports whether the user answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.outcome != confirmPending
}

// Result is true only when the user accepted "Yes".
func (m ConfirmModel) Result() bool {
	return m.outcome == confirmAnswered && m.yes
}

package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerModel lets the user choose one entry of a short list.
type PickerModel struct {
	Title    string
	Items    []string
	Cursor   int
	Chosen   bool
	Canceled bool
	theme    *Theme
}

// PickerKeyMap defines keybindings for the picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

// DefaultPickerKeyMap returns the default keybindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// NewPicker creates a picker over items.
func NewPicker(theme *Theme, title string, items []string) PickerModel {
	return PickerModel{Title: title, Items: items, theme: theme}
}

// Update handles a key press.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	keys := DefaultPickerKeyMap()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case key.Matches(msg, keys.Choose):
			m.Chosen = len(m.Items) > 0
			m.Canceled = len(m.Items) == 0
		case key.Matches(msg, keys.Cancel):
			m.Canceled = true
		}
	}
	return m, nil
}

// View renders the picker box.
func (m PickerModel) View() string {
	t := m.theme
	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Cursor {
			rows = append(rows, t.Highlight.Render(IconCursor+" "+item))
			continue
		}
		rows = append(rows, t.Normal.Render("  "+item))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render(m.Title),
		"",
		strings.Join(rows, "\n"),
		"",
		t.Subtle.Render("↑/↓ to move • enter to choose • esc to cancel"),
	)
	return t.Box.Render(content)
}

// Done returns true once the picker is closed.
func (m PickerModel) Done() bool {
	return m.Chosen || m.Canceled
}

// Selected returns the chosen item.
func (m PickerModel) Selected() (string, bool) {
	if !m.Chosen || m.Cursor >= len(m.Items) {
		return "", false
	}
	return m.Items[m.Cursor], true
}

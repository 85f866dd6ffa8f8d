package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/cli/styles"
)

// Confirmer implements port.Confirmer with an inline Bubble Tea prompt.
type Confirmer struct {
	theme *styles.Theme
	opts  []tea.ProgramOption
}

var _ port.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a terminal confirmer.
func NewConfirmer(theme *styles.Theme, opts ...tea.ProgramOption) *Confirmer {
	return &Confirmer{theme: theme, opts: opts}
}

// Confirm implements port.Confirmer.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.opts...)
	p := tea.NewProgram(confirmProgram{confirm: styles.NewConfirm(c.theme, prompt)}, opts...)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m, ok := final.(confirmProgram)
	if !ok || m.canceled {
		return false, nil
	}
	return m.confirm.Result(), nil
}

// confirmProgram wraps ConfirmModel as a standalone program.
type confirmProgram struct {
	confirm  styles.ConfirmModel
	canceled bool
}

func (m confirmProgram) Init() tea.Cmd {
	return m.confirm.Init()
}

func (m confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.canceled = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmProgram) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}

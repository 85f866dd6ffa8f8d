package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/cli/model"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) { r.msgs = append(r.msgs, msg) }

func testTheme() *styles.Theme {
	return styles.NewThemeFromPalette(config.DefaultConfig().Appearance.DarkPalette)
}

func TestNotifier_WritesLinesWhenDetached(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out, testTheme())

	id := n.Show(context.Background(), "Layout exported", port.NotificationSuccess, 0)
	assert.NotEmpty(t, id)
	assert.Contains(t, out.String(), "Layout exported")

	n.Dismiss(context.Background(), id)
	n.Clear(context.Background())
}

func TestNotifier_SendsToAttachedProgram(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out, testTheme())
	rec := &recordingSender{}
	n.Attach(rec)

	id := n.Show(context.Background(), "Stored layout is corrupted", port.NotificationError, 2500)
	n.Dismiss(context.Background(), id)
	n.Clear(context.Background())

	assert.Empty(t, out.String())
	require.Len(t, rec.msgs, 3)
	assert.Equal(t, model.NoticeMsg{
		ID:       id,
		Kind:     port.NotificationError,
		Text:     "Stored layout is corrupted",
		Duration: 2500 * time.Millisecond,
	}, rec.msgs[0])
	assert.Equal(t, model.DismissNoticeMsg{ID: id}, rec.msgs[1])
	assert.Equal(t, model.ClearNoticesMsg{}, rec.msgs[2])

	n.Attach(nil)
	n.Show(context.Background(), "back on stderr", port.NotificationInfo, 0)
	assert.Contains(t, out.String(), "back on stderr")
}

func TestConfirmProgram(t *testing.T) {
	var m tea.Model = confirmProgram{confirm: styles.NewConfirm(testTheme(), "Replace the desk?")}
	assert.Contains(t, m.View(), "Replace the desk?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.(confirmProgram).confirm.Result())
	assert.Empty(t, m.View())

	m = confirmProgram{confirm: styles.NewConfirm(testTheme(), "Replace the desk?")}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.(confirmProgram).canceled)
}

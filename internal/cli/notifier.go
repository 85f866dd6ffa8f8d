package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/cli/model"
	"github.com/bnema/floatdesk/internal/cli/styles"
)

// Sender is the part of *tea.Program the notifier needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Notifier implements port.Notification. Notices become toasts while a desk
// program is attached and styled lines on out otherwise.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	theme   *styles.Theme
	program Sender
}

var _ port.Notification = (*Notifier)(nil)

// NewNotifier creates a notifier writing to out until a program is attached.
func NewNotifier(out io.Writer, theme *styles.Theme) *Notifier {
	return &Notifier{out: out, theme: theme}
}

// Attach routes notices to program. Pass nil to detach.
func (n *Notifier) Attach(program Sender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = program
}

// Show implements port.Notification.
func (n *Notifier) Show(_ context.Context, message string, kind port.NotificationType, durationMs int) port.NotificationID {
	id := port.NotificationID(uuid.NewString())

	n.mu.Lock()
	program := n.program
	n.mu.Unlock()

	if program != nil {
		program.Send(model.NoticeMsg{
			ID:       id,
			Kind:     kind,
			Text:     message,
			Duration: time.Duration(durationMs) * time.Millisecond,
		})
		return id
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.out != nil {
		fmt.Fprintln(n.out, n.theme.RenderNotice(kind, message))
	}
	return id
}

// Dismiss implements port.Notification.
func (n *Notifier) Dismiss(_ context.Context, id port.NotificationID) {
	if program := n.attached(); program != nil {
		program.Send(model.DismissNoticeMsg{ID: id})
	}
}

// Clear implements port.Notification.
func (n *Notifier) Clear(_ context.Context) {
	if program := n.attached(); program != nil {
		program.Send(model.ClearNoticesMsg{})
	}
}

func (n *Notifier) attached() Sender {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.program
}

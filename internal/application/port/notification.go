package port

import "context"

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks

// NotificationType selects how a notice is styled.
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationError
	NotificationWarning
)

var notificationNames = [...]string{"info", "success", "error", "warning"}

// String returns the lowercase name, "info" for unknown values.
func (t NotificationType) String() string {
	if t < 0 || int(t) >= len(notificationNames) {
		return notificationNames[NotificationInfo]
	}
	return notificationNames[t]
}

// NotificationID identifies a notice so it can be dismissed early.
type NotificationID string

// Notification shows short-lived notices to the user: a toast inside the
// desk, a styled line on stderr for one-shot commands.
type Notification interface {
	// Show displays message for durationMs milliseconds; 0 uses the host
	// default.
	Show(ctx context.Context, message string, notifType NotificationType, durationMs int) NotificationID
	Dismiss(ctx context.Context, id NotificationID)
	Clear(ctx context.Context)
}

package appstate

import (
	"github.com/google/uuid"
)

// NotificationKind classifies a Notification.
type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message shown to the user.
// The ID lets renderers dismiss a specific notification.
type Notification struct {
	ID      string           `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// NewNotification returns a Notification with a random ID.
func NewNotification(kind NotificationKind, message string) *Notification {
	return &Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}
}

func (n *Notification) clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

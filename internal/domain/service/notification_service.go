package service

import (
	"context"

	"chaintrace/internal/errors"
)

// ErrNotificationUnavailable marks send failures worth retrying.
var ErrNotificationUnavailable = errors.New("notification backend unavailable")

// NotificationService delivers push notifications.
type NotificationService interface {
	// SendTopicNotification pushes to every device subscribed to topic. Transient
	// failures wrap ErrNotificationUnavailable.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}

package usecase

import (
	"context"

	"chaintrace/internal/domain/service"
)

// NotificationUsecase turns published tracking events into push notifications.
type NotificationUsecase interface {
	// DeliverTrackingEvent sends one notification to the timeline's topic. Errors
	// wrapping service.ErrNotificationUnavailable are worth retrying.
	DeliverTrackingEvent(ctx context.Context, event *service.TrackingEventMessage) error
}

package service

// Notification outcomes reported by the notifier.
const (
	NotificationSent    = "sent"
	NotificationRetry   = "retry"
	NotificationDropped = "dropped"
)

// MetricsRecorder counts business events for the metrics endpoint.
type MetricsRecorder interface {
	PurchaseCreated()
	MaterialPaymentRecorded()
	TrackingEventAppended(target, status string)
	NotificationDelivered(outcome string)
}

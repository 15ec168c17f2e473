package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "chaintrace/internal/delivery/context"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"
	"chaintrace/internal/util"
)

type notificationService struct {
	notificationSvc service.NotificationService
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// NewNotificationService creates the notifier use case.
func NewNotificationService(
	logger *slog.Logger,
	notificationSvc service.NotificationService,
	metrics service.MetricsRecorder,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationSvc: notificationSvc,
		metrics:         metrics,
		logger:          logger,
	}
}

// DeliverTrackingEvent sends one topic notification per appended event.
func (s *notificationService) DeliverTrackingEvent(ctx context.Context, event *service.TrackingEventMessage) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event == nil || event.Status == "" || !hasTarget(event) {
		s.metrics.NotificationDelivered(service.NotificationDropped)

		return domainerrors.ErrValidationFailed.WithDetails("tracking event has no target or status")
	}

	title, body := notificationText(event)
	data := map[string]string{
		"target":   event.Target,
		"status":   event.Status,
		"progress": strconv.Itoa(event.Progress),
		"sequence": strconv.Itoa(event.Sequence),
	}
	if event.PurchaseID != "" {
		data["purchaseId"] = event.PurchaseID
	}
	if event.MaterialID != "" {
		data["materialId"] = event.MaterialID
		data["paymentId"] = event.PaymentID
	}

	err := s.notificationSvc.SendTopicNotification(ctx, event.Topic(), title, body, data)
	switch {
	case err == nil:
		s.metrics.NotificationDelivered(service.NotificationSent)
		logger.Info("Tracking notification sent",
			slog.String("topic", event.Topic()),
			slog.String("status", event.Status),
		)

		return nil
	case errors.Is(err, service.ErrNotificationUnavailable):
		s.metrics.NotificationDelivered(service.NotificationRetry)
		logger.Warn("Notification backend unavailable, event will be retried",
			slog.String("topic", event.Topic()),
			slog.Any("error", err),
		)

		return err
	default:
		s.metrics.NotificationDelivered(service.NotificationDropped)
		logger.Error("Failed to send tracking notification",
			slog.String("topic", event.Topic()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send tracking notification")
	}
}

func hasTarget(event *service.TrackingEventMessage) bool {
	switch event.Target {
	case service.TrackingTargetPurchase:
		return event.PurchaseID != ""
	case service.TrackingTargetMaterialPayment:
		return event.MaterialID != "" && event.PaymentID != ""
	default:
		return false
	}
}

func notificationText(event *service.TrackingEventMessage) (string, string) {
	item := event.ItemName
	if item == "" {
		item = "Your order"
	}
	title := fmt.Sprintf("%s: %s", item, util.HumanizeStatus(event.Status))

	body := event.Description
	if event.Address != "" {
		body = fmt.Sprintf("%s (%s)", body, event.Address)
	}

	return title, body
}

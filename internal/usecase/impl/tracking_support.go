package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chaintrace/config"
	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"
)

// trackingSupport holds what both timeline owners (purchases and raw-material
// payments) need to build and announce an event.
type trackingSupport struct {
	userRepo     repository.UserRepository
	geocoder     service.Geocoder
	publisher    service.EventPublisher
	metrics      service.MetricsRecorder
	enforce      bool
	deliveryDays int
	logger       *slog.Logger
}

func newTrackingSupport(
	cfg *config.Config,
	userRepo repository.UserRepository,
	geocoder service.Geocoder,
	publisher service.EventPublisher,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) trackingSupport {
	days := 7
	if cfg.Tracking != nil && cfg.Tracking.EstimatedDeliveryDays > 0 {
		days = cfg.Tracking.EstimatedDeliveryDays
	}

	return trackingSupport{
		userRepo:     userRepo,
		geocoder:     geocoder,
		publisher:    publisher,
		metrics:      metrics,
		enforce:      cfg.Tracking.Enforce(),
		deliveryDays: days,
		logger:       logger,
	}
}

func (t *trackingSupport) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, t.logger)
}

func (t *trackingSupport) estimatedDelivery(now time.Time) time.Time {
	return now.AddDate(0, 0, t.deliveryDays)
}

// buildEvent validates input and assembles the event a session is about to append.
// Missing addresses are reverse-geocoded from coordinates, falling back to "lat, lng".
func (t *trackingSupport) buildEvent(ctx context.Context, session entity.Session, input *usecase.AppendTrackingInput) (entity.TrackingEvent, error) {
	if !input.Status.IsValid() {
		return entity.TrackingEvent{}, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(input.Status))
	}

	location := input.Location
	location.Address = strings.TrimSpace(location.Address)
	if err := location.Validate(); err != nil {
		return entity.TrackingEvent{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if location.Address == "" {
		location.Address = t.resolveAddress(ctx, *location.Coordinates)
	}

	handledBy := entity.HandledBy{}
	if input.HandledBy != nil {
		handledBy = *input.HandledBy
	}
	handledBy = handledBy.FillFrom(t.updaterProfile(ctx, session))

	ev := entity.TrackingEvent{
		Status:              input.Status,
		Location:            location,
		Description:         strings.TrimSpace(input.Description),
		UpdatedBy:           session.TrackingUpdater(),
		Images:              input.Images,
		EstimatedNextUpdate: input.EstimatedNextUpdate,
		Notes:               input.Notes,
		Temperature:         input.Temperature,
		Humidity:            input.Humidity,
		HandledBy:           &handledBy,
	}
	if input.Timestamp != nil {
		ev.Timestamp = *input.Timestamp
	}
	if ev.Description == "" {
		ev.Description = "Status updated to " + string(ev.Status)
	}

	return ev, nil
}

func (t *trackingSupport) resolveAddress(ctx context.Context, coords entity.Coordinates) string {
	address, err := t.geocoder.ReverseGeocode(ctx, coords)
	if err != nil || address == "" {
		t.log(ctx).Debug("Reverse geocoding unavailable, using coordinates",
			slog.String("coordinates", coords.String()),
			slog.Any("error", err),
		)

		return coords.String()
	}

	return address
}

// updaterProfile is best-effort: an unknown updater just leaves handledBy as given.
func (t *trackingSupport) updaterProfile(ctx context.Context, session entity.Session) *entity.User {
	user, err := t.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			t.log(ctx).Warn("Failed to load updater profile", slog.Any("userID", session.UserID), slog.Any("error", err))
		}

		return nil
	}

	return user
}

// requireDeliveryAddress rejects an order the seed event could not locate.
func requireDeliveryAddress(address entity.PostalAddress) error {
	if missing := address.MissingDeliveryFields(); len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("deliveryAddress requires " + strings.Join(missing, ", "))
	}

	return nil
}

// seedEvent is the synthetic first event of every new timeline.
func seedEvent(buyer entity.Updater, address entity.PostalAddress, now time.Time) entity.TrackingEvent {
	return entity.TrackingEvent{
		Status:      entity.StatusOrderPlaced,
		Timestamp:   now,
		Location:    entity.Location{Address: address.String(), City: address.City, State: address.State, Country: address.Country},
		Description: "Order placed and payment submitted",
		UpdatedBy:   buyer,
	}
}

// appendError maps tracking-log failures onto the API taxonomy.
func appendError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidTransition):
		return domainerrors.ErrInvalidStatusTransition.WithDetails(err.Error())
	case errors.Is(err, entity.ErrUnknownTrackingStatus):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	default:
		return errors.Wrap(err, "failed to append tracking event")
	}
}

// saveError maps optimistic-update failures.
func saveError(err error, what string) error {
	if errors.Is(err, repository.ErrVersionConflict) {
		return domainerrors.ErrConcurrentUpdate.WithDetails(what + " changed while the update was in progress")
	}

	return errors.Wrap(err, "failed to save "+what)
}

// announce publishes after the save has committed. Failures are logged only.
func (t *trackingSupport) announce(ctx context.Context, msg *service.TrackingEventMessage) {
	t.metrics.TrackingEventAppended(msg.Target, msg.Status)

	msg.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := t.publisher.PublishTrackingEvent(ctx, msg); err != nil {
		t.log(ctx).Warn("Failed to publish tracking event",
			slog.String("target", msg.TargetID()),
			slog.String("status", msg.Status),
			slog.Any("error", err),
		)
	}
}

func purchaseMessage(p *entity.Purchase, ev entity.TrackingEvent) *service.TrackingEventMessage {
	return &service.TrackingEventMessage{
		Target:          service.TrackingTargetPurchase,
		PurchaseID:      p.PurchaseID,
		Status:          string(ev.Status),
		Description:     ev.Description,
		Address:         ev.Location.Address,
		UpdatedBy:       ev.UpdatedBy.WalletAddress,
		RecipientWallet: p.CustomerWallet,
		ItemName:        p.ProductName,
		Sequence:        len(p.Tracking.Events),
		Progress:        p.Tracking.Progress(),
		Timestamp:       ev.Timestamp,
	}
}

func materialPaymentMessage(m *entity.RawMaterial, p *entity.MaterialPayment, ev entity.TrackingEvent) *service.TrackingEventMessage {
	return &service.TrackingEventMessage{
		Target:          service.TrackingTargetMaterialPayment,
		MaterialID:      m.ID.String(),
		PaymentID:       p.ID.String(),
		Status:          string(ev.Status),
		Description:     ev.Description,
		Address:         ev.Location.Address,
		UpdatedBy:       ev.UpdatedBy.WalletAddress,
		RecipientWallet: p.BuyerWalletAddress,
		ItemName:        m.Name,
		Sequence:        len(p.Tracking.Events),
		Progress:        p.Tracking.Progress(),
		Timestamp:       ev.Timestamp,
	}
}

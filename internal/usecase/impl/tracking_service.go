package impl

import (
	"context"
	"log/slog"
	"time"

	"chaintrace/config"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"
	"chaintrace/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type trackingService struct {
	trackingSupport
	purchaseRepo    repository.PurchaseRepository
	rawMaterialRepo repository.RawMaterialRepository
	qrService       service.QRCodeService
	now             func() time.Time
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	Config          *config.Config
	UserRepo        repository.UserRepository
	PurchaseRepo    repository.PurchaseRepository
	RawMaterialRepo repository.RawMaterialRepository
	Geocoder        service.Geocoder
	Publisher       service.EventPublisher
	QRService       service.QRCodeService
	Metrics         service.MetricsRecorder
	Logger          *slog.Logger
}

func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		trackingSupport: newTrackingSupport(params.Config, params.UserRepo, params.Geocoder, params.Publisher, params.Metrics, params.Logger),
		purchaseRepo:    params.PurchaseRepo,
		rawMaterialRepo: params.RawMaterialRepo,
		qrService:       params.QRService,
		now:             time.Now,
	}
}

// AppendPurchaseEvent appends to an order's timeline. The producer may always
// append; suppliers and logistics partners act by role.
func (srv *trackingService) AppendPurchaseEvent(ctx context.Context, session entity.Session, purchaseID string, input *usecase.AppendTrackingInput) (*usecase.TrackingView, error) {
	purchase, err := findPurchase(ctx, srv.purchaseRepo, purchaseID)
	if err != nil {
		return nil, err
	}
	if !purchase.CanUpdateTracking(session) {
		return nil, domainerrors.ErrTrackingUpdateForbidden
	}
	if !input.Status.IsFinishedGoods() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status " + string(input.Status) + " does not apply to finished-goods orders")
	}

	ev, err := srv.buildEvent(ctx, session, input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	appended, err := purchase.Tracking.Append(ev, now, srv.enforce)
	if err != nil {
		return nil, appendError(err)
	}
	purchase.Recalculate()
	purchase.UpdatedAt = now

	if err := srv.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, saveError(err, "purchase")
	}

	srv.log(ctx).Info("Tracking event appended",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("status", string(appended.Status)),
		slog.Int("events", len(purchase.Tracking.Events)),
	)
	srv.announce(ctx, purchaseMessage(purchase, appended))

	return trackingView(purchase), nil
}

func (srv *trackingService) GetPurchaseTracking(ctx context.Context, purchaseID string) (*usecase.TrackingView, error) {
	purchase, err := findPurchase(ctx, srv.purchaseRepo, purchaseID)
	if err != nil {
		return nil, err
	}

	return trackingView(purchase), nil
}

func (srv *trackingService) GetTrackingQR(ctx context.Context, purchaseID string) ([]byte, error) {
	purchase, err := findPurchase(ctx, srv.purchaseRepo, purchaseID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(service.TrackingQRPayload{
		PurchaseID:      purchase.PurchaseID,
		TransactionHash: purchase.TransactionHash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tracking QR code")
	}

	return png, nil
}

// AppendMaterialEvent appends to one payment's timeline inside a raw material. The
// whole payments document is rewritten in a single versioned row update.
func (srv *trackingService) AppendMaterialEvent(
	ctx context.Context,
	session entity.Session,
	materialID uuid.UUID,
	paymentRef string,
	input *usecase.AppendTrackingInput,
) (*usecase.MaterialTrackingResult, error) {
	material, err := findRawMaterial(ctx, srv.rawMaterialRepo, materialID)
	if err != nil {
		return nil, err
	}

	idx, ok := material.FindPayment(paymentRef)
	if !ok {
		return nil, domainerrors.ErrPaymentNotFound
	}
	if !material.IsOwner(session.WalletAddress) {
		srv.log(ctx).Warn("Tracking update rejected, not the supplier",
			slog.Any("materialID", material.ID),
			slog.String("wallet", session.WalletAddress),
		)

		return nil, domainerrors.ErrListingOwnershipViolation.WithDetails("only the supplier who listed this material can update its tracking")
	}

	ev, err := srv.buildEvent(ctx, session, input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	payment := &material.Payments[idx]
	appended, err := payment.Tracking.Append(ev, now, srv.enforce)
	if err != nil {
		return nil, appendError(err)
	}
	material.UpdatedAt = now

	if err := srv.rawMaterialRepo.Update(ctx, material); err != nil {
		return nil, saveError(err, "raw material")
	}

	srv.log(ctx).Info("Material tracking event appended",
		slog.Any("materialID", material.ID),
		slog.Any("paymentID", payment.ID),
		slog.String("status", string(appended.Status)),
	)
	srv.announce(ctx, materialPaymentMessage(material, payment, appended))

	return &usecase.MaterialTrackingResult{
		MaterialID: material.ID,
		Payment:    *payment,
		Event:      appended,
	}, nil
}

// trackingView decorates each event with a readable duration and, for geotagged
// events, the distance from the previous geotagged event.
func trackingView(p *entity.Purchase) *usecase.TrackingView {
	timeline := make([]usecase.TimelineEntry, 0, len(p.Tracking.Events))

	var lastFix *entity.Coordinates
	for _, ev := range p.Tracking.Events {
		entry := usecase.TimelineEntry{TrackingEvent: ev}
		if ev.ActualDuration != nil {
			entry.DurationHuman = util.FormatElapsedMinutes(*ev.ActualDuration)
		}
		if c := ev.Location.Coordinates; c != nil {
			if lastFix != nil {
				km := entity.DistanceKm(*lastFix, *c)
				entry.DistanceFromPreviousKm = &km
			}
			lastFix = c
		}
		timeline = append(timeline, entry)
	}

	return &usecase.TrackingView{
		Purchase: p,
		Timeline: timeline,
		Progress: p.Tracking.Progress(),
	}
}

func findRawMaterial(ctx context.Context, repo repository.RawMaterialRepository, id uuid.UUID) (*entity.RawMaterial, error) {
	material, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRawMaterialNotFound) {
		return nil, domainerrors.ErrMaterialNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find raw material")
	}

	return material, nil
}

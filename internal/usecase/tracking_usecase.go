package usecase

import (
	"context"
	"time"

	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
)

// AppendTrackingInput is one status report from the party handling the goods.
type AppendTrackingInput struct {
	Status              entity.TrackingStatus
	Timestamp           *time.Time
	Location            entity.Location
	Description         string
	Images              []string
	EstimatedNextUpdate *time.Time
	Notes               string
	Temperature         *float64
	Humidity            *float64
	HandledBy           *entity.HandledBy
}

// TimelineEntry decorates a stored event for display.
type TimelineEntry struct {
	entity.TrackingEvent
	DurationHuman          string
	DistanceFromPreviousKm *float64
}

// TrackingView is the read model of one order's shipment.
type TrackingView struct {
	Purchase *entity.Purchase
	Timeline []TimelineEntry
	Progress int
}

// MaterialTrackingResult is returned after appending to a raw-material payment.
type MaterialTrackingResult struct {
	MaterialID uuid.UUID
	Payment    entity.MaterialPayment
	Event      entity.TrackingEvent
}

// TrackingUsecase appends to and reads shipment timelines.
type TrackingUsecase interface {
	AppendPurchaseEvent(ctx context.Context, session entity.Session, purchaseID string, input *AppendTrackingInput) (*TrackingView, error)
	GetPurchaseTracking(ctx context.Context, purchaseID string) (*TrackingView, error)
	GetTrackingQR(ctx context.Context, purchaseID string) ([]byte, error)

	// AppendMaterialEvent resolves paymentRef against the material's payments by id,
	// transaction hash, buyer wallet or date. Only the supplier may append.
	AppendMaterialEvent(ctx context.Context, session entity.Session, materialID uuid.UUID, paymentRef string, input *AppendTrackingInput) (*MaterialTrackingResult, error)
}

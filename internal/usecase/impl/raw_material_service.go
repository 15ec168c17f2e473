package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chaintrace/config"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type rawMaterialService struct {
	trackingSupport
	rawMaterialRepo repository.RawMaterialRepository
	verifier        service.TransactionVerifier
	now             func() time.Time
}

// RawMaterialServiceParams holds dependencies for RawMaterialService, injected by Fx.
type RawMaterialServiceParams struct {
	fx.In

	Config          *config.Config
	UserRepo        repository.UserRepository
	RawMaterialRepo repository.RawMaterialRepository
	Verifier        service.TransactionVerifier
	Geocoder        service.Geocoder
	Publisher       service.EventPublisher
	Metrics         service.MetricsRecorder
	Logger          *slog.Logger
}

func NewRawMaterialService(params RawMaterialServiceParams) usecase.RawMaterialUsecase {
	return &rawMaterialService{
		trackingSupport: newTrackingSupport(params.Config, params.UserRepo, params.Geocoder, params.Publisher, params.Metrics, params.Logger),
		rawMaterialRepo: params.RawMaterialRepo,
		verifier:        params.Verifier,
		now:             time.Now,
	}
}

func (srv *rawMaterialService) CreateRawMaterial(ctx context.Context, session entity.Session, input *usecase.CreateRawMaterialInput) (*entity.RawMaterial, error) {
	if session.Role != entity.RoleSupplier {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("only suppliers can list raw materials")
	}

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Price <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case input.AvailableQuantity != nil && *input.AvailableQuantity < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("availableQuantity must not be negative")
	}

	supplier, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, userLookupError(err, "supplier")
	}

	now := srv.now()
	material := &entity.RawMaterial{
		ID:                uuid.New(),
		Name:              name,
		Description:       strings.TrimSpace(input.Description),
		Category:          strings.TrimSpace(input.Category),
		Price:             input.Price,
		Location:          strings.TrimSpace(input.Location),
		AddedBy:           supplier.WalletAddress,
		SupplierName:      supplier.DisplayName(),
		AvailableQuantity: input.AvailableQuantity,
		Unit:              strings.TrimSpace(input.Unit),
		Payments:          []entity.MaterialPayment{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := srv.rawMaterialRepo.Create(ctx, material); err != nil {
		return nil, errors.Wrap(err, "failed to create raw material")
	}

	srv.log(ctx).Info("Raw material listed",
		slog.Any("materialID", material.ID),
		slog.String("addedBy", material.AddedBy),
	)

	return material, nil
}

func (srv *rawMaterialService) GetRawMaterial(ctx context.Context, id uuid.UUID) (*entity.RawMaterial, error) {
	return findRawMaterial(ctx, srv.rawMaterialRepo, id)
}

func (srv *rawMaterialService) ListRawMaterials(ctx context.Context, filter repository.RawMaterialFilter) ([]*entity.RawMaterial, error) {
	filter.AddedBy = entity.NormalizeWallet(filter.AddedBy)

	materials, err := srv.rawMaterialRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list raw materials")
	}

	return materials, nil
}

// RecordPayment stores a producer's payment against a material and opens its
// shipment timeline. Stock, payments and the seed event are saved in one row update.
func (srv *rawMaterialService) RecordPayment(ctx context.Context, session entity.Session, input *usecase.RecordMaterialPaymentInput) (*entity.MaterialPayment, error) {
	if session.Role != entity.RoleProducer {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("only producers can buy raw materials")
	}
	txHash := strings.TrimSpace(input.TransactionHash)
	if txHash == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transactionHash is required")
	}
	if input.Quantity <= 0 || input.Amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive and amount non-negative")
	}
	if err := requireDeliveryAddress(input.DeliveryAddress); err != nil {
		return nil, err
	}

	material, err := findRawMaterial(ctx, srv.rawMaterialRepo, input.MaterialID)
	if err != nil {
		return nil, err
	}
	if material.HasTransaction(txHash) {
		return nil, domainerrors.ErrDuplicateTransaction
	}

	if err := srv.verifier.VerifyTransaction(ctx, txHash); err != nil {
		srv.log(ctx).Warn("Transaction verification failed", slog.String("tx_hash", txHash), slog.Any("error", err))
		if errors.Is(err, service.ErrTransactionNotConfirmed) {
			return nil, domainerrors.ErrTransactionNotConfirmed.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to verify transaction")
	}

	buyerName := strings.TrimSpace(input.BuyerName)
	if buyerName == "" {
		if buyer := srv.updaterProfile(ctx, session); buyer != nil {
			buyerName = buyer.DisplayName()
		}
	}
	amount := input.Amount
	if amount == 0 {
		amount = entity.RoundAmount(material.Price * float64(input.Quantity))
	}

	now := srv.now()
	estimated := srv.estimatedDelivery(now)
	payment := entity.MaterialPayment{
		ID:                 uuid.New(),
		BuyerWalletAddress: entity.NormalizeWallet(session.WalletAddress),
		BuyerName:          buyerName,
		Quantity:           input.Quantity,
		Amount:             amount,
		TransactionHash:    txHash,
		Date:               now,
		DeliveryAddress:    input.DeliveryAddress,
		EstimatedDelivery:  &estimated,
	}
	seeded, err := payment.Tracking.Append(seedEvent(session.TrackingUpdater(), input.DeliveryAddress, now), now, srv.enforce)
	if err != nil {
		return nil, appendError(err)
	}

	if err := material.RecordPayment(payment); err != nil {
		if errors.Is(err, entity.ErrInsufficientAvailability) {
			return nil, domainerrors.ErrInsufficientAvailability.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to record payment")
	}
	material.UpdatedAt = now

	if err := srv.rawMaterialRepo.Update(ctx, material); err != nil {
		return nil, saveError(err, "raw material")
	}

	stored := &material.Payments[len(material.Payments)-1]
	srv.log(ctx).Info("Raw material payment recorded",
		slog.Any("materialID", material.ID),
		slog.Any("paymentID", stored.ID),
		slog.String("tx_hash", txHash),
	)
	srv.metrics.MaterialPaymentRecorded()
	srv.announce(ctx, materialPaymentMessage(material, stored, seeded))

	return stored, nil
}

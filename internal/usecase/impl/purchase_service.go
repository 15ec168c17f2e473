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

type purchaseService struct {
	trackingSupport
	txManager    repository.TransactionManager
	purchaseRepo repository.PurchaseRepository
	verifier     service.TransactionVerifier
	now          func() time.Time
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	Verifier     service.TransactionVerifier
	Geocoder     service.Geocoder
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		trackingSupport: newTrackingSupport(params.Config, params.UserRepo, params.Geocoder, params.Publisher, params.Metrics, params.Logger),
		txManager:       params.TxManager,
		purchaseRepo:    params.PurchaseRepo,
		verifier:        params.Verifier,
		now:             time.Now,
	}
}

// CreatePurchase records a paid order. The transaction hash is the idempotency key:
// it is checked up front and enforced again by the unique index inside the transaction
// that also appends the sale to the product listing.
func (srv *purchaseService) CreatePurchase(ctx context.Context, session entity.Session, input *usecase.CreatePurchaseInput) (*entity.Purchase, error) {
	txHash := strings.TrimSpace(input.TransactionHash)
	if txHash == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transactionHash is required")
	}
	if input.Quantity <= 0 || input.UnitPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive and unitPrice non-negative")
	}
	if err := requireDeliveryAddress(input.DeliveryAddress); err != nil {
		return nil, err
	}
	if !session.OwnsWallet(input.CustomerWallet) {
		return nil, domainerrors.ErrForbidden.WithDetails("customerId must be the signed-in wallet")
	}

	switch _, err := srv.purchaseRepo.FindByTransactionHash(ctx, txHash); {
	case err == nil:
		return nil, domainerrors.ErrDuplicateTransaction
	case !errors.Is(err, repository.ErrPurchaseNotFound):
		return nil, errors.Wrap(err, "failed to check transaction hash")
	}

	customer, producer, err := srv.parties(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := srv.verifier.VerifyTransaction(ctx, txHash); err != nil {
		srv.log(ctx).Warn("Transaction verification failed", slog.String("tx_hash", txHash), slog.Any("error", err))
		if errors.Is(err, service.ErrTransactionNotConfirmed) {
			return nil, domainerrors.ErrTransactionNotConfirmed.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to verify transaction")
	}

	now := srv.now()
	purchase := &entity.Purchase{
		PurchaseID:         entity.NewPurchaseID(now),
		ProductID:          strings.TrimSpace(input.ProductID),
		ProductName:        input.ProductName,
		ProductDescription: input.ProductDescription,
		Quantity:           input.Quantity,
		UnitPrice:          input.UnitPrice,
		CustomerWallet:     customer.WalletAddress,
		CustomerName:       customer.DisplayName(),
		ProducerWallet:     producer.WalletAddress,
		ProducerName:       producer.DisplayName(),
		TransactionHash:    txHash,
		DeliveryAddress:    input.DeliveryAddress,
		EstimatedDelivery:  srv.estimatedDelivery(now),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	purchase.Recalculate()
	seeded, err := purchase.Tracking.Append(seedEvent(session.TrackingUpdater(), input.DeliveryAddress, now), now, srv.enforce)
	if err != nil {
		return nil, appendError(err)
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPurchaseRepository().Create(ctx, purchase); err != nil {
			return err
		}

		return srv.recordSale(ctx, factory.NewProductRepository(), purchase, now)
	})
	if err != nil {
		return nil, srv.createError(ctx, err)
	}

	srv.log(ctx).Info("Purchase created",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("tx_hash", txHash),
		slog.Float64("total", purchase.TotalAmount),
	)
	srv.metrics.PurchaseCreated()
	srv.announce(ctx, purchaseMessage(purchase, seeded))

	return purchase, nil
}

func (srv *purchaseService) parties(ctx context.Context, input *usecase.CreatePurchaseInput) (*entity.User, *entity.User, error) {
	customer, err := srv.userRepo.FindByWallet(ctx, entity.NormalizeWallet(input.CustomerWallet))
	if err != nil {
		return nil, nil, userLookupError(err, "customer")
	}
	if !customer.Role.CanBuyProducts() {
		return nil, nil, domainerrors.ErrRoleNotAllowed.WithDetails("customer must be a customer or producer")
	}

	producer, err := srv.userRepo.FindByWallet(ctx, entity.NormalizeWallet(input.ProducerWallet))
	if err != nil {
		return nil, nil, userLookupError(err, "producer")
	}
	if producer.Role != entity.RoleProducer {
		return nil, nil, domainerrors.ErrRoleNotAllowed.WithDetails("producerId does not belong to a producer")
	}

	return customer, producer, nil
}

// recordSale appends the payment to the referenced product when the reference is a
// known listing of this producer. Free-form references are kept on the purchase only.
func (srv *purchaseService) recordSale(ctx context.Context, products repository.ProductRepository, purchase *entity.Purchase, now time.Time) error {
	productID, err := uuid.Parse(purchase.ProductID)
	if err != nil {
		return nil
	}

	product, err := products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !entity.SameWallet(product.AddedBy, purchase.ProducerWallet) {
		return domainerrors.ErrValidationFailed.WithDetails("product is not listed by this producer")
	}

	err = product.RecordSale(entity.ListingPayment{
		ID:                 uuid.New(),
		BuyerWalletAddress: purchase.CustomerWallet,
		BuyerName:          purchase.CustomerName,
		Quantity:           purchase.Quantity,
		Amount:             purchase.TotalAmount,
		TransactionHash:    purchase.TransactionHash,
		PurchaseID:         purchase.PurchaseID,
		Date:               now,
	})
	if err != nil {
		return err
	}

	return products.Update(ctx, product)
}

func (srv *purchaseService) createError(ctx context.Context, err error) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrDuplicateTransaction):
		return domainerrors.ErrDuplicateTransaction
	case errors.Is(err, entity.ErrInsufficientAvailability):
		return domainerrors.ErrInsufficientAvailability.WithDetails(err.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrConcurrentUpdate.WithDetails("product stock changed, retry the purchase")
	case errors.As(err, &appErr):
		return err
	default:
		srv.log(ctx).Error("Failed to create purchase", slog.Any("error", err))

		return errors.Wrap(err, "failed to create purchase")
	}
}

func (srv *purchaseService) GetPurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	return findPurchase(ctx, srv.purchaseRepo, purchaseID)
}

func (srv *purchaseService) ListUserPurchases(ctx context.Context, userRef string, role entity.Role) ([]*entity.Purchase, error) {
	wallet := entity.NormalizeWallet(userRef)
	if id, err := uuid.Parse(strings.TrimSpace(userRef)); err == nil {
		user, err := srv.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, userLookupError(err, "user")
		}
		wallet = user.WalletAddress
		if role == "" {
			role = user.Role
		}
	}
	if wallet == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	if role == "" {
		role = entity.RoleCustomer
	}

	var (
		purchases []*entity.Purchase
		err       error
	)
	if role == entity.RoleProducer {
		purchases, err = srv.purchaseRepo.ListByProducer(ctx, wallet)
	} else {
		purchases, err = srv.purchaseRepo.ListByCustomer(ctx, wallet)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

func findPurchase(ctx context.Context, repo repository.PurchaseRepository, purchaseID string) (*entity.Purchase, error) {
	purchase, err := repo.FindByPurchaseID(ctx, strings.TrimSpace(purchaseID))
	if errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, domainerrors.ErrPurchaseNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find purchase")
	}

	return purchase, nil
}

func userLookupError(err error, who string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WithDetails(who + " not found")
	}

	return errors.Wrapf(err, "failed to find %s", who)
}

package postgres

import (
	"context"
	"time"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	purchase.Recalculate()
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == model.IndexPurchasesPurchaseID {
				return domainerrors.ErrConflict.WrapMessage("purchase id collision")
			}

			return repository.ErrDuplicateTransaction
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

func (repo *purchaseRepository) FindByPurchaseID(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	return repo.findOne(ctx, "purchase_id = ?", purchaseID)
}

func (repo *purchaseRepository) FindByTransactionHash(ctx context.Context, hash string) (*entity.Purchase, error) {
	return repo.findOne(ctx, "transaction_hash = ?", hash)
}

func (repo *purchaseRepository) findOne(ctx context.Context, where string, arg any) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		Where("is_active = ?", true).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase")
	}

	return toPurchaseDomain(&purchaseM), nil
}

func (repo *purchaseRepository) ListByCustomer(ctx context.Context, wallet string) ([]*entity.Purchase, error) {
	return repo.list(ctx, "customer_wallet = ?", entity.NormalizeWallet(wallet))
}

func (repo *purchaseRepository) ListByProducer(ctx context.Context, wallet string) ([]*entity.Purchase, error) {
	return repo.list(ctx, "producer_wallet = ?", entity.NormalizeWallet(wallet))
}

func (repo *purchaseRepository) list(ctx context.Context, where string, arg any) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel
	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

func (repo *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	purchase.Recalculate()
	purchaseM := fromPurchaseDomain(purchase)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ? AND version = ?", purchase.ID, purchase.Version).
		Updates(map[string]any{
			"total_amount":    purchaseM.TotalAmount,
			"current_status":  purchaseM.CurrentStatus,
			"tracking_events": purchaseM.TrackingEvents,
			"actual_delivery": purchaseM.ActualDelivery,
			"version":         gorm.Expr("version + 1"),
			"updated_at":      now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	purchase.Version++
	purchase.UpdatedAt = now

	return nil
}

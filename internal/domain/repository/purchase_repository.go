package repository

import (
	"context"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/errors"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// ErrDuplicateTransaction reports a second purchase carrying an already stored hash.
var ErrDuplicateTransaction = errors.New("transaction hash already recorded")

type PurchaseRepository interface {
	// Create inserts purchase. The unique index on transaction_hash turns a replayed
	// submission into ErrDuplicateTransaction.
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindByPurchaseID(ctx context.Context, purchaseID string) (*entity.Purchase, error)
	FindByTransactionHash(ctx context.Context, hash string) (*entity.Purchase, error)
	ListByCustomer(ctx context.Context, wallet string) ([]*entity.Purchase, error)
	ListByProducer(ctx context.Context, wallet string) ([]*entity.Purchase, error)

	// Update saves the tracking log and recomputed totals, guarded by purchase.Version.
	Update(ctx context.Context, purchase *entity.Purchase) error
}

package repository

import (
	"context"

	"chaintrace/internal/errors"
)

// ErrVersionConflict is returned by optimistic updates whose row version moved on
// since the entity was read.
var ErrVersionConflict = errors.New("version conflict")

// TransactionManager runs use-case steps inside one database transaction without
// exposing the driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn in a transaction. A returned error rolls back, nil commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProductRepository() ProductRepository
	NewRawMaterialRepository() RawMaterialRepository
	NewPurchaseRepository() PurchaseRepository
}

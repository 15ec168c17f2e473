package postgres

import (
	"context"

	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. gorm rolls back on error or panic, and
// errors from fn come back unchanged so use cases can match them.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	return tx.Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories binds every repository to the open transaction, so a purchase
// row and the payment appended to its listing commit together.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) NewRawMaterialRepository() repository.RawMaterialRepository {
	return NewRawMaterialRepository(r.tx)
}

func (r txRepositories) NewPurchaseRepository() repository.PurchaseRepository {
	return NewPurchaseRepository(r.tx)
}

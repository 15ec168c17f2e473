package usecase

import (
	"context"

	"chaintrace/internal/domain/entity"
)

// CreatePurchaseInput is submitted by the client once the payment transaction is broadcast.
// TotalAmount is informational; the stored total is always recomputed.
type CreatePurchaseInput struct {
	ProductID          string
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          float64
	TotalAmount        float64
	CustomerWallet     string
	ProducerWallet     string
	TransactionHash    string
	DeliveryAddress    entity.PostalAddress
}

// PurchaseUsecase records and lists finished-goods orders.
type PurchaseUsecase interface {
	// CreatePurchase is idempotent by transaction hash: a replay fails with a duplicate error.
	CreatePurchase(ctx context.Context, session entity.Session, input *CreatePurchaseInput) (*entity.Purchase, error)
	GetPurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error)

	// ListUserPurchases lists orders where userRef is the customer or, with role
	// producer, the producer. userRef may be a user id or a wallet. An empty role
	// means the stored role of a user id, or customer for a wallet.
	ListUserPurchases(ctx context.Context, userRef string, role entity.Role) ([]*entity.Purchase, error)
}

package entity

import (
	"time"

	"chaintrace/internal/errors"

	"github.com/google/uuid"
)

// ErrInsufficientAvailability is returned when a listing cannot cover an order.
var ErrInsufficientAvailability = errors.New("insufficient available quantity")

// ProductKind distinguishes the two listing shapes.
type ProductKind string

const (
	ProductKindSimple   ProductKind = "simple"
	ProductKindEnhanced ProductKind = "enhanced"
)

// IsValid reports whether k is a known listing shape.
func (k ProductKind) IsValid() bool {
	return k == ProductKindSimple || k == ProductKindEnhanced
}

// Product is a finished-goods listing owned by a producer.
type Product struct {
	ID                uuid.UUID
	Kind              ProductKind
	Name              string
	Price             float64
	Location          string
	AddedBy           string
	Description       string
	Category          string
	Images            []string
	Specifications    map[string]string
	SKU               string
	AvailableQuantity *int
	Unit              string
	Payments          []ListingPayment
	IsActive          bool
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ListingPayment records one completed purchase against a product. The list only grows.
type ListingPayment struct {
	ID                 uuid.UUID `json:"id"`
	BuyerWalletAddress string    `json:"buyerWalletAddress"`
	BuyerName          string    `json:"buyerName,omitempty"`
	Quantity           int       `json:"quantity"`
	Amount             float64   `json:"amount"`
	TransactionHash    string    `json:"transactionHash"`
	PurchaseID         string    `json:"purchaseId,omitempty"`
	Date               time.Time `json:"date"`
}

// RecordSale appends a payment and takes quantity from the tracked stock.
func (p *Product) RecordSale(payment ListingPayment) error {
	if err := reserve(p.AvailableQuantity, payment.Quantity); err != nil {
		return err
	}
	p.Payments = append(p.Payments, payment)

	return nil
}

// reserve decrements a tracked quantity in place. A nil quantity is untracked.
func reserve(available *int, qty int) error {
	if available == nil {
		return nil
	}
	if *available < qty {
		return errors.Wrapf(ErrInsufficientAvailability, "requested %d, available %d", qty, *available)
	}
	*available -= qty

	return nil
}

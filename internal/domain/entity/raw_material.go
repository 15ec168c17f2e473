package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawMaterial is a supplier listing. Each payment against it carries its own
// shipment timeline, so one material is the root of many independent logs.
type RawMaterial struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Category          string
	Price             float64
	Location          string
	AddedBy           string
	SupplierName      string
	AvailableQuantity *int
	Unit              string
	Payments          []MaterialPayment
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MaterialPayment is a producer's payment for a raw material.
type MaterialPayment struct {
	ID                 uuid.UUID
	BuyerWalletAddress string
	BuyerName          string
	Quantity           int
	Amount             float64
	TransactionHash    string
	Date               time.Time
	DeliveryAddress    PostalAddress
	EstimatedDelivery  *time.Time
	Tracking           TrackingLog
}

// IsOwner reports whether wallet is the supplier that listed the material.
func (m *RawMaterial) IsOwner(wallet string) bool {
	return SameWallet(m.AddedBy, wallet)
}

// HasTransaction reports whether a payment with exactly this hash was already recorded.
func (m *RawMaterial) HasTransaction(hash string) bool {
	for i := range m.Payments {
		if m.Payments[i].TransactionHash == hash {
			return true
		}
	}

	return false
}

// RecordPayment appends payment and takes its quantity from the tracked stock.
func (m *RawMaterial) RecordPayment(payment MaterialPayment) error {
	if err := reserve(m.AvailableQuantity, payment.Quantity); err != nil {
		return err
	}
	m.Payments = append(m.Payments, payment)

	return nil
}

// FindPayment resolves a caller-supplied identifier to a payment index. Callers send
// payment ids, transaction hashes, buyer wallets or stored dates interchangeably, so
// each strategy is tried in that order and the first match wins.
func (m *RawMaterial) FindPayment(candidate string) (int, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return -1, false
	}

	matchers := []func(*MaterialPayment) bool{
		func(p *MaterialPayment) bool { return p.ID.String() == candidate },
		func(p *MaterialPayment) bool { return p.TransactionHash == candidate },
		func(p *MaterialPayment) bool { return strings.EqualFold(p.BuyerWalletAddress, candidate) },
		func(p *MaterialPayment) bool { return matchesDate(p.Date, candidate) },
	}
	for _, match := range matchers {
		for i := range m.Payments {
			if match(&m.Payments[i]) {
				return i, true
			}
		}
	}

	return -1, false
}

// matchesDate compares against the renderings a client may have echoed back.
func matchesDate(date time.Time, candidate string) bool {
	if date.IsZero() {
		return false
	}
	utc := date.UTC()

	return candidate == utc.Format(time.RFC3339Nano) ||
		candidate == utc.Format(time.RFC3339) ||
		candidate == utc.Format("2006-01-02T15:04:05.000Z07:00")
}

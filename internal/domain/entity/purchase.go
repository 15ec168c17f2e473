package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Purchase is one finished-goods order. TransactionHash is unique system-wide and
// doubles as the idempotency key of order creation.
type Purchase struct {
	ID                 uuid.UUID
	PurchaseID         string
	ProductID          string
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          float64
	TotalAmount        float64
	CustomerWallet     string
	CustomerName       string
	ProducerWallet     string
	ProducerName       string
	TransactionHash    string
	DeliveryAddress    PostalAddress
	EstimatedDelivery  time.Time
	Tracking           TrackingLog
	IsActive           bool
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Recalculate derives TotalAmount from quantity and unit price. It is called before
// every save so stored totals never drift from their inputs.
func (p *Purchase) Recalculate() {
	p.TotalAmount = RoundAmount(float64(p.Quantity) * p.UnitPrice)
}

// IsProducer reports whether wallet is the order's producer.
func (p *Purchase) IsProducer(wallet string) bool {
	return SameWallet(p.ProducerWallet, wallet)
}

// IsParty reports whether wallet is the customer or producer of the order.
func (p *Purchase) IsParty(wallet string) bool {
	return SameWallet(p.CustomerWallet, wallet) || p.IsProducer(wallet)
}

// CanUpdateTracking reports whether the session may append to this order's timeline.
// The producer may always; suppliers and logistics partners act by role.
func (p *Purchase) CanUpdateTracking(s Session) bool {
	if p.IsProducer(s.WalletAddress) {
		return true
	}

	return s.Role == RoleSupplier || s.Role == RoleLogistics
}

// NewPurchaseID builds the public order number PUR-<unix-ms>-<8 hex>.
func NewPurchaseID(now time.Time) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		copy(b[:], uuid.New().NodeID())
	}

	return fmt.Sprintf("PUR-%d-%s", now.UnixMilli(), strings.ToUpper(hex.EncodeToString(b[:])))
}

// RoundAmount rounds token amounts to 8 decimal places.
func RoundAmount(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

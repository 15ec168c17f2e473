package service

import (
	"context"
	"fmt"
	"time"
)

// Tracking targets.
const (
	TrackingTargetPurchase        = "purchase"
	TrackingTargetMaterialPayment = "material_payment"
)

// TrackingEventMessage is published after every successful tracking append.
type TrackingEventMessage struct {
	RequestID       string    `json:"request_id,omitempty"`
	Target          string    `json:"target"`
	PurchaseID      string    `json:"purchase_id,omitempty"`
	MaterialID      string    `json:"material_id,omitempty"`
	PaymentID       string    `json:"payment_id,omitempty"`
	Status          string    `json:"status"`
	Description     string    `json:"description,omitempty"`
	Address         string    `json:"address,omitempty"`
	UpdatedBy       string    `json:"updated_by"`
	RecipientWallet string    `json:"recipient_wallet,omitempty"`
	ItemName        string    `json:"item_name,omitempty"`
	Sequence        int       `json:"sequence"`
	Progress        int       `json:"progress"`
	Timestamp       time.Time `json:"timestamp"`
}

// TargetID returns the identifier of the timeline the event was appended to.
func (m *TrackingEventMessage) TargetID() string {
	if m.Target == TrackingTargetMaterialPayment {
		return m.MaterialID + "/" + m.PaymentID
	}

	return m.PurchaseID
}

// Topic is the push topic subscribers of this timeline listen on.
func (m *TrackingEventMessage) Topic() string {
	if m.Target == TrackingTargetMaterialPayment {
		return fmt.Sprintf("material_%s_%s", m.MaterialID, m.PaymentID)
	}

	return "purchase_" + m.PurchaseID
}

// EventPublisher hands tracking events to the messaging backend.
type EventPublisher interface {
	PublishTrackingEvent(ctx context.Context, event *TrackingEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}

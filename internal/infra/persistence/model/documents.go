package model

import (
	"bytes"
	"encoding/json"
	"time"

	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TrackingEventDocument is the stored form of a tracking event. Older rows recorded
// the updater as a bare wallet string with a separate, optional updatedByRole key;
// both shapes decode into the canonical Updater.
type TrackingEventDocument entity.TrackingEvent

// UnmarshalJSON normalises legacy updater fields.
func (d *TrackingEventDocument) UnmarshalJSON(data []byte) error {
	type plain entity.TrackingEvent
	var raw struct {
		plain
		UpdatedBy     json.RawMessage `json:"updatedBy"`
		UpdatedByRole string          `json:"updatedByRole"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode tracking event")
	}

	*d = TrackingEventDocument(raw.plain)
	updater, err := decodeUpdater(raw.UpdatedBy)
	if err != nil {
		return err
	}
	if updater.Role == "" {
		updater.Role = entity.Role(raw.UpdatedByRole)
	}
	updater.WalletAddress = entity.NormalizeWallet(updater.WalletAddress)
	d.UpdatedBy = updater

	return nil
}

func decodeUpdater(raw json.RawMessage) (entity.Updater, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return entity.Updater{}, nil
	}

	if raw[0] == '"' {
		var wallet string
		if err := json.Unmarshal(raw, &wallet); err != nil {
			return entity.Updater{}, errors.Wrap(err, "decode updatedBy")
		}

		return entity.Updater{WalletAddress: wallet}, nil
	}

	var updater entity.Updater
	if err := json.Unmarshal(raw, &updater); err != nil {
		return entity.Updater{}, errors.Wrap(err, "decode updatedBy")
	}

	return updater, nil
}

// MaterialPaymentDocument is one element of raw_materials.payments.
type MaterialPaymentDocument struct {
	ID                 uuid.UUID               `json:"id"`
	BuyerWalletAddress string                  `json:"buyerWalletAddress"`
	BuyerName          string                  `json:"buyerName,omitempty"`
	Quantity           int                     `json:"quantity"`
	Amount             float64                 `json:"amount"`
	TransactionHash    string                  `json:"transactionHash"`
	Date               time.Time               `json:"date"`
	DeliveryAddress    entity.PostalAddress    `json:"deliveryAddress"`
	EstimatedDelivery  *time.Time              `json:"estimatedDelivery,omitempty"`
	ActualDelivery     *time.Time              `json:"actualDelivery,omitempty"`
	CurrentStatus      entity.TrackingStatus   `json:"currentStatus"`
	TrackingEvents     []TrackingEventDocument `json:"trackingEvents"`
}

// UnmarshalJSON folds the legacy producerWalletAddress and manufacturerWalletAddress
// keys into BuyerWalletAddress.
func (d *MaterialPaymentDocument) UnmarshalJSON(data []byte) error {
	type plain MaterialPaymentDocument
	var raw struct {
		plain
		ProducerWalletAddress     string `json:"producerWalletAddress"`
		ManufacturerWalletAddress string `json:"manufacturerWalletAddress"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode material payment")
	}

	*d = MaterialPaymentDocument(raw.plain)
	for _, legacy := range []string{raw.ProducerWalletAddress, raw.ManufacturerWalletAddress} {
		if d.BuyerWalletAddress != "" {
			break
		}
		d.BuyerWalletAddress = legacy
	}
	d.BuyerWalletAddress = entity.NormalizeWallet(d.BuyerWalletAddress)
	if d.CurrentStatus == "" && len(d.TrackingEvents) > 0 {
		d.CurrentStatus = d.TrackingEvents[len(d.TrackingEvents)-1].Status
	}

	return nil
}

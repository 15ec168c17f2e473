package model

import (
	"time"

	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseModel mirrors the 'purchases' table. transaction_hash is unique so a
// replayed order creation fails at insert time.
type PurchaseModel struct {
	ID                 uuid.UUID                                  `gorm:"type:uuid;primaryKey"`
	PurchaseID         string                                     `gorm:"type:varchar(40);not null;uniqueIndex:idx_purchases_purchase_id"`
	ProductID          string                                     `gorm:"type:varchar(64);index"`
	ProductName        string                                     `gorm:"type:varchar(255);not null"`
	ProductDescription string                                     `gorm:"type:text"`
	Quantity           int                                        `gorm:"not null"`
	UnitPrice          float64                                    `gorm:"type:double precision;not null"`
	TotalAmount        float64                                    `gorm:"type:double precision;not null"`
	CustomerWallet     string                                     `gorm:"type:varchar(64);not null;index"`
	CustomerName       string                                     `gorm:"type:varchar(255)"`
	ProducerWallet     string                                     `gorm:"type:varchar(64);not null;index"`
	ProducerName       string                                     `gorm:"type:varchar(255)"`
	TransactionHash    string                                     `gorm:"type:varchar(128);not null;uniqueIndex:idx_purchases_transaction_hash"`
	CurrentStatus      string                                     `gorm:"type:varchar(32);not null;index"`
	TrackingEvents     datatypes.JSONSlice[TrackingEventDocument] `gorm:"type:jsonb;not null"`
	DeliveryAddress    datatypes.JSONType[entity.PostalAddress]   `gorm:"type:jsonb"`
	EstimatedDelivery  time.Time
	ActualDelivery     *time.Time
	IsActive           bool  `gorm:"not null;default:true"`
	Version            int64 `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

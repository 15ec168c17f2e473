package model

import (
	"time"

	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Payments are an embedded JSONB list.
type ProductModel struct {
	ID                uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Kind              string                                `gorm:"type:varchar(16);not null;index"`
	Name              string                                `gorm:"type:varchar(255);not null"`
	Price             float64                               `gorm:"type:double precision;not null"`
	Location          string                                `gorm:"type:varchar(255)"`
	AddedBy           string                                `gorm:"type:varchar(64);not null;index"`
	Description       string                                `gorm:"type:text"`
	Category          string                                `gorm:"type:varchar(100);index"`
	Images            datatypes.JSONSlice[string]           `gorm:"type:jsonb"`
	Specifications    datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	SKU               string                                `gorm:"column:sku;type:varchar(100)"`
	AvailableQuantity *int
	Unit              string                                     `gorm:"type:varchar(32)"`
	Payments          datatypes.JSONSlice[entity.ListingPayment] `gorm:"type:jsonb;not null"`
	IsActive          bool                                       `gorm:"not null;default:true"`
	Version           int64                                      `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RawMaterialModel mirrors the 'raw_materials' table. Each payment document carries
// its own tracking timeline, so the whole row is saved at once.
type RawMaterialModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	Category          string    `gorm:"type:varchar(100);index"`
	Price             float64   `gorm:"type:double precision;not null"`
	Location          string    `gorm:"type:varchar(255)"`
	AddedBy           string    `gorm:"type:varchar(64);not null;index"`
	SupplierName      string    `gorm:"type:varchar(255)"`
	AvailableQuantity *int
	Unit              string                                       `gorm:"type:varchar(32)"`
	Payments          datatypes.JSONSlice[MaterialPaymentDocument] `gorm:"type:jsonb;not null"`
	Version           int64                                        `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RawMaterialModel) TableName() string {
	return "raw_materials"
}

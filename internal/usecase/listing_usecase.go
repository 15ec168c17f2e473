package usecase

import (
	"context"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProductInput describes a new product listing. Simple products use only
// the first four fields.
type CreateProductInput struct {
	Kind              entity.ProductKind
	Name              string
	Price             float64
	Location          string
	Description       string
	Category          string
	Images            []string
	Specifications    map[string]string
	SKU               string
	AvailableQuantity *int
	Unit              string
}

// ProductUsecase manages finished-goods listings.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, session entity.Session, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
}

// CreateRawMaterialInput describes a new raw-material listing.
type CreateRawMaterialInput struct {
	Name              string
	Description       string
	Category          string
	Price             float64
	Location          string
	AvailableQuantity *int
	Unit              string
}

// RecordMaterialPaymentInput is a producer's completed payment for a material.
type RecordMaterialPaymentInput struct {
	MaterialID      uuid.UUID
	Quantity        int
	Amount          float64
	TransactionHash string
	BuyerName       string
	DeliveryAddress entity.PostalAddress
}

// RawMaterialUsecase manages supplier listings and the payments recorded against them.
type RawMaterialUsecase interface {
	CreateRawMaterial(ctx context.Context, session entity.Session, input *CreateRawMaterialInput) (*entity.RawMaterial, error)
	GetRawMaterial(ctx context.Context, id uuid.UUID) (*entity.RawMaterial, error)
	ListRawMaterials(ctx context.Context, filter repository.RawMaterialFilter) ([]*entity.RawMaterial, error)

	// RecordPayment appends a payment with a seeded order_placed event. A hash already
	// recorded on this material is rejected as a duplicate.
	RecordPayment(ctx context.Context, session entity.Session, input *RecordMaterialPaymentInput) (*entity.MaterialPayment, error)
}

package repository

import (
	"context"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/errors"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings. Zero fields do not filter.
type ProductFilter struct {
	AddedBy  string
	Category string
	Kind     entity.ProductKind
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update saves payments and stock when product.Version still matches the stored
	// row, then bumps product.Version. A stale version yields ErrVersionConflict.
	Update(ctx context.Context, product *entity.Product) error
}

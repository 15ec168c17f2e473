package repository

import (
	"context"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/errors"

	"github.com/google/uuid"
)

var ErrRawMaterialNotFound = errors.New("raw material not found")

// RawMaterialFilter narrows material listings. Zero fields do not filter.
type RawMaterialFilter struct {
	AddedBy  string
	Category string
}

type RawMaterialRepository interface {
	Create(ctx context.Context, material *entity.RawMaterial) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RawMaterial, error)
	List(ctx context.Context, filter RawMaterialFilter) ([]*entity.RawMaterial, error)

	// Update rewrites the embedded payments (and their timelines) and the available
	// quantity in one row save, guarded by material.Version.
	Update(ctx context.Context, material *entity.RawMaterial) error
}

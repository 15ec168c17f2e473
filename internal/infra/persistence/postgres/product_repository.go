package postgres

import (
	"context"
	"time"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC")
	if filter.AddedBy != "" {
		query = query.Where("added_by = ?", entity.NormalizeWallet(filter.AddedBy))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND version = ?", product.ID, product.Version).
		Updates(map[string]any{
			"payments":           productM.Payments,
			"available_quantity": productM.AvailableQuantity,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	product.Version++
	product.UpdatedAt = now

	return nil
}

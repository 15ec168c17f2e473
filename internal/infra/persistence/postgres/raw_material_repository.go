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

type rawMaterialRepository struct {
	db *gorm.DB
}

// NewRawMaterialRepository is the constructor for rawMaterialRepository.
func NewRawMaterialRepository(db *gorm.DB) repository.RawMaterialRepository {
	return &rawMaterialRepository{db: db}
}

func (repo *rawMaterialRepository) Create(ctx context.Context, material *entity.RawMaterial) error {
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}
	materialM := fromRawMaterialDomain(material)

	if err := repo.db.WithContext(ctx).Create(materialM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create raw material")
	}

	material.CreatedAt = materialM.CreatedAt
	material.UpdatedAt = materialM.UpdatedAt

	return nil
}

func (repo *rawMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RawMaterial, error) {
	var materialM model.RawMaterialModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&materialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRawMaterialNotFound
		}

		return nil, errors.Wrap(err, "failed to find raw material by id")
	}

	return toRawMaterialDomain(&materialM), nil
}

func (repo *rawMaterialRepository) List(ctx context.Context, filter repository.RawMaterialFilter) ([]*entity.RawMaterial, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.AddedBy != "" {
		query = query.Where("added_by = ?", entity.NormalizeWallet(filter.AddedBy))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	var materialModels []*model.RawMaterialModel
	if err := query.Find(&materialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list raw materials")
	}

	materials := make([]*entity.RawMaterial, 0, len(materialModels))
	for _, materialM := range materialModels {
		materials = append(materials, toRawMaterialDomain(materialM))
	}

	return materials, nil
}

// Update writes the whole payments document. The nested timelines live inside it, so
// no partial-path update can miss a mutation two levels down.
func (repo *rawMaterialRepository) Update(ctx context.Context, material *entity.RawMaterial) error {
	materialM := fromRawMaterialDomain(material)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.RawMaterialModel{}).
		Where("id = ? AND version = ?", material.ID, material.Version).
		Updates(map[string]any{
			"payments":           materialM.Payments,
			"available_quantity": materialM.AvailableQuantity,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update raw material")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	material.Version++
	material.UpdatedAt = now

	return nil
}

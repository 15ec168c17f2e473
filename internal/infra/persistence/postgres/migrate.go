package postgres

import (
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the four tables and their indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.RawMaterialModel{},
		&model.PurchaseModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}

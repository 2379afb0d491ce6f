package postgres

import (
	"gorm.io/gorm"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/productrepo"
)

// Migrate creates or updates the tables used by the repositories and queries.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.ProductAttributeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}

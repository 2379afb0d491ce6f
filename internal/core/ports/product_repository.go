// Package ports defines the contracts between the sales core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"sales/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product with its attributes and assigns the generated id.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists stock and attribute changes of an existing product.
	// Attributes missing from the aggregate are removed from storage.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id.
	// Returns errs.ObjectNotFoundError when no product has the given id.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetByIDs resolves the given ids. Unknown ids are absent from the result.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)
}

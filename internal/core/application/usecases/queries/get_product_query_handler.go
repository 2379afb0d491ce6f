package queries

import (
	"context"

	"gorm.io/gorm"

	"sales/internal/pkg/errs"
)

// GetProductQueryHandler reads a single product with its dynamic attributes.
type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown ids.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	products, err := selectProducts(ctx, h.db, "WHERE id = ?", query.ProductID())
	if err != nil {
		return ProductView{}, err
	}
	if len(products) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	return products[0], nil
}

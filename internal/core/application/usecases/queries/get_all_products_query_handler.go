package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler reads the catalog ordered by product id.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectProducts(ctx, h.db, "")
}

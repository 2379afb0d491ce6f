package queries

import (
	"context"

	"gorm.io/gorm"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle filters on the decoded state, so rows stored with an unrecognized
// state are listed as Placed, the same way they are read everywhere else.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Session().IsAdmin() {
		return nil, errs.NewAccessDeniedError("list all orders", query.Session().Email().String())
	}

	orders, err := selectOrders(ctx, h.db, "")
	if err != nil {
		return nil, err
	}
	if query.State() == order.Unknown {
		return orders, nil
	}

	filtered := make([]OrderView, 0, len(orders))
	for _, view := range orders {
		if view.State == query.State().String() {
			filtered = append(filtered, view)
		}
	}
	return filtered, nil
}

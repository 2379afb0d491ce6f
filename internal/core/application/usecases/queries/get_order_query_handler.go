package queries

import (
	"context"

	"gorm.io/gorm"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown ids and
// errs.AccessDeniedError when the order belongs to somebody else.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := selectOrders(ctx, h.db, "WHERE id = ?", query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	view := orders[0]
	owner, err := kernel.NewEmail(view.Owner)
	if err != nil {
		return OrderView{}, err
	}
	if !query.Session().CanActFor(owner) {
		return OrderView{}, errs.NewAccessDeniedError("read this order", query.Session().Email().String())
	}

	return view, nil
}

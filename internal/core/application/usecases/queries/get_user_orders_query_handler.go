package queries

import (
	"context"

	"gorm.io/gorm"

	"sales/internal/pkg/errs"
)

// GetUserOrdersQueryHandler lists a user's orders. Customers can only list
// their own; administrators can list anyone's.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Session().CanActFor(query.Owner()) {
		return nil, errs.NewAccessDeniedError("list orders of "+query.Owner().String(), query.Session().Email().String())
	}

	return selectOrders(ctx, h.db, "WHERE owner = ?", query.Owner().String())
}

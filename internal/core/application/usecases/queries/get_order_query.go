package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order. Customers may only read their own orders.
type GetOrderQuery struct {
	session kernel.Session
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(session kernel.Session, orderID int64) (GetOrderQuery, error) {
	if err := session.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "max int64")
	}

	return GetOrderQuery{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Session() kernel.Session {
	return q.session
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

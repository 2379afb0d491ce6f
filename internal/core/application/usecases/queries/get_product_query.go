package queries

import (
	"errors"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery reads one catalog product. Any session may run it.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsOutOfRangeError("product id", productID, 1, "max int64")
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() int64 {
	return q.productID
}

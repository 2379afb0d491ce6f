package services

import (
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

// StockKeeper is a domain service that moves stock between the catalog and
// orders.
//
// Business rules:
//   - Availability is checked for every line before any stock changes
//   - A line whose product is unknown aborts the whole check
//   - Taking stock never lets a product go negative
//   - Stock is only returned for lines of the given order
//
// Example usage:
//
//	keeper := services.NewStockKeeper()
//	if err := keeper.CheckAvailability(lines, products); err != nil {
//	    return err // nothing was touched
//	}
//	if err := keeper.Take(o, products); err != nil {
//	    return err
//	}
type StockKeeper struct{}

func NewStockKeeper() StockKeeper {
	return StockKeeper{}
}

// CheckAvailability verifies that every line can be served from the products
// on hand. It does not modify any product.
//
// Returns:
//   - ObjectNotFoundError when a line references a product that is not in products
//   - PolicyViolationError for the first line with insufficient stock
func (StockKeeper) CheckAvailability(lines []order.LineItem, products map[int64]*product.Product) error {
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok || p == nil {
			return errs.NewObjectNotFoundError("product id", line.ProductID)
		}
		if !p.HasStock(line.Quantity) {
			return errs.NewPolicyViolationError(fmt.Sprintf(
				"insufficient stock for product %d: requested %d, available %d",
				line.ProductID, line.Quantity, p.Quantity(),
			))
		}
	}
	return nil
}

// Take decrements stock for every line of o. A decrement that would go
// negative is returned as is; callers must discard the products in that case.
func (StockKeeper) Take(o *order.Order, products map[int64]*product.Product) error {
	return apply(o, products, (*product.Product).DecreaseStock)
}

// Return puts the stock of every line of o back.
func (StockKeeper) Return(o *order.Order, products map[int64]*product.Product) error {
	return apply(o, products, (*product.Product).IncreaseStock)
}

func apply(
	o *order.Order,
	products map[int64]*product.Product,
	change func(*product.Product, int) error,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for _, line := range o.Lines() {
		p, ok := products[line.ProductID]
		if !ok || p == nil {
			return errs.NewObjectNotFoundError("product id", line.ProductID)
		}
		if err := change(p, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

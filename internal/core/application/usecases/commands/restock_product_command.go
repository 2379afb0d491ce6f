package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand sets the stock level of a catalog product. The
// handler applies the difference to the stored quantity, so units taken by
// orders placed in between are accounted for.
//
// Example:
//
//	cmd, err := NewRestockProductCommand(adminSession, 7, 40)
//	if err != nil {
//	    return err
//	}
//	p, err := handler.Handle(ctx, cmd)
type RestockProductCommand struct {
	session   kernel.Session
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand validates the target stock level. Zero empties the
// stock; negative levels are rejected.
func NewRestockProductCommand(session kernel.Session, productID int64, quantity int) (RestockProductCommand, error) {
	if err := session.Validate(); err != nil {
		return RestockProductCommand{}, err
	}
	if productID <= 0 {
		return RestockProductCommand{}, errs.NewValueIsOutOfRangeError("product id", productID, 1, "max int64")
	}
	if quantity < 0 {
		return RestockProductCommand{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "max int")
	}

	return RestockProductCommand{
		session:   session,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

func (c RestockProductCommand) Session() kernel.Session {
	return c.session
}

func (c RestockProductCommand) ProductID() int64 {
	return c.productID
}

// Quantity is the requested stock level.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

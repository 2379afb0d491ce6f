package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand moves an InProcess order to Shipped.
// Only administrators may ship orders.
type ShipOrderCommand struct {
	orderReference

	guard guard.ConstructorGuard
}

func NewShipOrderCommand(session kernel.Session, orderID int64) (ShipOrderCommand, error) {
	ref, err := newOrderReference(session, orderID)
	if err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderReference: ref,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

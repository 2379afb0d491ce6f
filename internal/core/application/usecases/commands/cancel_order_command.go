package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a Placed order within 24 hours of its creation and
// returns its stock. The owner of the order or an administrator may cancel it.
type CancelOrderCommand struct {
	orderReference

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(session kernel.Session, orderID int64) (CancelOrderCommand, error) {
	ref, err := newOrderReference(session, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderReference: ref,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

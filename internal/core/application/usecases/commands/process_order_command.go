package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand moves a Placed order to InProcess.
// Only administrators may process orders.
type ProcessOrderCommand struct {
	orderReference

	guard guard.ConstructorGuard
}

func NewProcessOrderCommand(session kernel.Session, orderID int64) (ProcessOrderCommand, error) {
	ref, err := newOrderReference(session, orderID)
	if err != nil {
		return ProcessOrderCommand{}, err
	}

	return ProcessOrderCommand{
		orderReference: ref,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

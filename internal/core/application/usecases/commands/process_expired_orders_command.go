package commands

import (
	"errors"

	"sales/internal/pkg/guard"
)

// ProcessExpiredOrdersCommand moves every Placed order whose cancellation
// window has closed into processing. It is meant to run on a schedule.
//
// Example:
//
//	cmd := NewProcessExpiredOrdersCommand()
//	processed, err := handler.Handle(ctx, cmd)
type ProcessExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

var ErrProcessExpiredOrdersCommandIsNotConstructed = errors.New(
	"ProcessExpiredOrdersCommand must be created via NewProcessExpiredOrdersCommand constructor",
)

func NewProcessExpiredOrdersCommand() ProcessExpiredOrdersCommand {
	return ProcessExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ProcessExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessExpiredOrdersCommandIsNotConstructed)
}

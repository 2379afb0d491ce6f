package commands

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for the
// session's user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(session, []int64{1, 2}, []int{3, 1})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	session kernel.Session
	lines   []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand pairs productIDs and quantities by index.
// Both slices must have the same, non-zero length.
func NewCreateOrderCommand(session kernel.Session, productIDs []int64, quantities []int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setLines(productIDs, quantities),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Session() kernel.Session {
	return c.session
}

// Lines returns the requested line items in request order.
func (c CreateOrderCommand) Lines() []order.LineItem {
	lines := make([]order.LineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductIDs returns the requested product ids in request order.
func (c CreateOrderCommand) ProductIDs() []int64 {
	ids := make([]int64, len(c.lines))
	for i, line := range c.lines {
		ids[i] = line.ProductID
	}
	return ids
}

// Quantities returns the requested quantities in request order.
func (c CreateOrderCommand) Quantities() []int {
	quantities := make([]int, len(c.lines))
	for i, line := range c.lines {
		quantities[i] = line.Quantity
	}
	return quantities
}

func (c *CreateOrderCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *CreateOrderCommand) setLines(productIDs []int64, quantities []int) error {
	if len(productIDs) != len(quantities) {
		return errs.NewValueIsInvalidErrorWithCause(
			"line items",
			fmt.Errorf("%d product ids but %d quantities", len(productIDs), len(quantities)),
		)
	}
	if len(productIDs) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	lines := make([]order.LineItem, len(productIDs))
	seen := make(map[int64]struct{}, len(productIDs))
	for i := range productIDs {
		if quantities[i] <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("product %d: quantity must be positive, got %d", productIDs[i], quantities[i]),
			)
		}
		if _, ok := seen[productIDs[i]]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"line items",
				fmt.Errorf("product %d is listed more than once", productIDs[i]),
			)
		}
		seen[productIDs[i]] = struct{}{}
		lines[i] = order.LineItem{ProductID: productIDs[i], Quantity: quantities[i]}
	}

	c.lines = lines
	return nil
}

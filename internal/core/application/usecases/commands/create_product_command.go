package commands

import (
	"errors"
	"maps"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog. Field rules are checked
// by product.NewProduct when the command is handled; the constructor only
// checks the session and decodes the physical state.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	session    kernel.Session
	name       string
	typ        string
	weight     float64
	quantity   int
	state      product.PhysicalState
	price      float64
	attributes map[string]string

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	session kernel.Session,
	name string,
	typ string,
	weight float64,
	quantity int,
	state string,
	price float64,
	attributes map[string]string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:       name,
		typ:        typ,
		weight:     weight,
		quantity:   quantity,
		price:      price,
		attributes: maps.Clone(attributes),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setState(state),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Session() kernel.Session {
	return c.session
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Type() string {
	return c.typ
}

func (c CreateProductCommand) Weight() float64 {
	return c.weight
}

func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

func (c CreateProductCommand) State() product.PhysicalState {
	return c.state
}

func (c CreateProductCommand) Price() float64 {
	return c.price
}

func (c CreateProductCommand) Attributes() map[string]string {
	return maps.Clone(c.attributes)
}

func (c *CreateProductCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *CreateProductCommand) setState(state string) error {
	s, err := product.ParsePhysicalState(state)
	if err != nil {
		return err
	}
	c.state = s
	return nil
}

package product

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrIDAlreadyAssigned       = errors.New("product id is already assigned")
)

// Product is a catalog entry together with its stock on hand.
type Product struct {
	id         int64
	name       string
	typ        string
	weight     float64
	quantity   int
	state      PhysicalState
	price      float64
	attributes map[string]string

	guard guard.ConstructorGuard
}

// NewProduct validates every invariant and returns a product without id.
// The id is assigned when the product is first persisted.
func NewProduct(
	name string,
	typ string,
	weight float64,
	quantity int,
	state PhysicalState,
	price float64,
	attributes map[string]string,
) (*Product, error) {
	p := &Product{
		attributes: make(map[string]string, len(attributes)),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setType(typ),
		p.setWeight(weight),
		p.setQuantity(quantity),
		p.setState(state),
		p.setPrice(price),
		p.setAttributes(attributes),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(
	id int64,
	name string,
	typ string,
	weight float64,
	quantity int,
	state PhysicalState,
	price float64,
	attributes map[string]string,
) (*Product, error) {
	p, err := NewProduct(name, typ, weight, quantity, state, price, attributes)
	if err != nil {
		return nil, err
	}
	if err = p.AssignID(id); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// AssignID sets the identifier handed out by storage. It can be called once.
func (p *Product) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("product id", id, 1, "max int64")
	}
	if p.id != 0 && p.id != id {
		return ErrIDAlreadyAssigned
	}
	p.id = id
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Type() string {
	return p.typ
}

func (p *Product) Weight() float64 {
	return p.weight
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) State() PhysicalState {
	return p.state
}

func (p *Product) Price() float64 {
	return p.price
}

// Attributes returns a copy of the dynamic attributes.
func (p *Product) Attributes() map[string]string {
	return maps.Clone(p.attributes)
}

// Attribute returns the dynamic attribute named key.
func (p *Product) Attribute(key string) (string, bool) {
	v, ok := p.attributes[key]
	return v, ok
}

// SetAttribute adds or replaces a dynamic attribute.
func (p *Product) SetAttribute(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("attribute name")
	}
	p.attributes[key] = value
	return nil
}

// RemoveAttribute deletes a dynamic attribute. Removing a missing key is a no-op.
func (p *Product) RemoveAttribute(key string) {
	delete(p.attributes, key)
}

// HasStock reports whether quantity units can be taken from stock.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.quantity >= quantity
}

// DecreaseStock takes quantity units from stock. It fails instead of letting
// the stock go negative, even when availability was checked before.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.quantity)
	}
	if p.quantity-quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("product %d has %d units, cannot take %d", p.id, p.quantity, quantity),
		)
	}
	p.quantity -= quantity
	return nil
}

// IncreaseStock returns quantity units to stock.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "max int")
	}
	p.quantity += quantity
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setType(typ string) error {
	if strings.TrimSpace(typ) == "" {
		return errs.NewValueIsRequiredError("type")
	}
	p.typ = typ
	return nil
}

func (p *Product) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setState(state PhysicalState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	p.state = state
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setAttributes(attributes map[string]string) error {
	var joined error
	for k, v := range attributes {
		joined = errors.Join(joined, p.SetAttribute(k, v))
	}
	return joined
}

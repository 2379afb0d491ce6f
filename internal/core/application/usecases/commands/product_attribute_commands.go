package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrSetProductAttributeCommandIsNotConstructed = errors.New(
		"SetProductAttributeCommand must be created via NewSetProductAttributeCommand constructor",
	)
	ErrRemoveProductAttributeCommandIsNotConstructed = errors.New(
		"RemoveProductAttributeCommand must be created via NewRemoveProductAttributeCommand constructor",
	)
)

// productAttribute names one dynamic attribute of one product.
type productAttribute struct {
	session   kernel.Session
	productID int64
	name      string
}

func newProductAttribute(session kernel.Session, productID int64, name string) (productAttribute, error) {
	var attr productAttribute
	if err := errors.Join(
		attr.setSession(session),
		attr.setProductID(productID),
		attr.setName(name),
	); err != nil {
		return productAttribute{}, err
	}
	return attr, nil
}

func (a productAttribute) Session() kernel.Session {
	return a.session
}

func (a productAttribute) ProductID() int64 {
	return a.productID
}

func (a productAttribute) Name() string {
	return a.name
}

func (a *productAttribute) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	a.session = session
	return nil
}

func (a *productAttribute) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsOutOfRangeError("product id", productID, 1, "max int64")
	}
	a.productID = productID
	return nil
}

func (a *productAttribute) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("attribute name")
	}
	a.name = name
	return nil
}

// SetProductAttributeCommand adds or replaces a dynamic product attribute.
type SetProductAttributeCommand struct {
	productAttribute
	value string

	guard guard.ConstructorGuard
}

func NewSetProductAttributeCommand(
	session kernel.Session,
	productID int64,
	name string,
	value string,
) (SetProductAttributeCommand, error) {
	attr, err := newProductAttribute(session, productID, name)
	if err != nil {
		return SetProductAttributeCommand{}, err
	}

	return SetProductAttributeCommand{
		productAttribute: attr,
		value:            value,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c SetProductAttributeCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAttributeCommandIsNotConstructed)
}

func (c SetProductAttributeCommand) Value() string {
	return c.value
}

// RemoveProductAttributeCommand deletes a dynamic product attribute.
type RemoveProductAttributeCommand struct {
	productAttribute

	guard guard.ConstructorGuard
}

func NewRemoveProductAttributeCommand(
	session kernel.Session,
	productID int64,
	name string,
) (RemoveProductAttributeCommand, error) {
	attr, err := newProductAttribute(session, productID, name)
	if err != nil {
		return RemoveProductAttributeCommand{}, err
	}

	return RemoveProductAttributeCommand{
		productAttribute: attr,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveProductAttributeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductAttributeCommandIsNotConstructed)
}

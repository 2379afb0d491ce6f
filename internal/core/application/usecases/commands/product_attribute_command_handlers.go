package commands

import (
	"context"

	"sales/internal/core/domain/model/product"
)

// SetProductAttributeCommandHandler updates one dynamic attribute of a product.
type SetProductAttributeCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewSetProductAttributeCommandHandler(uowFactory ProductUoWFactory) SetProductAttributeCommandHandler {
	return SetProductAttributeCommandHandler{uowFactory: uowFactory}
}

func (h SetProductAttributeCommandHandler) Handle(
	ctx context.Context,
	cmd SetProductAttributeCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "manage products"); err != nil {
		return nil, err
	}

	return changeProduct(ctx, h.uowFactory, cmd.ProductID(), func(p *product.Product) error {
		return p.SetAttribute(cmd.Name(), cmd.Value())
	})
}

// RemoveProductAttributeCommandHandler deletes one dynamic attribute of a product.
type RemoveProductAttributeCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewRemoveProductAttributeCommandHandler(uowFactory ProductUoWFactory) RemoveProductAttributeCommandHandler {
	return RemoveProductAttributeCommandHandler{uowFactory: uowFactory}
}

func (h RemoveProductAttributeCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveProductAttributeCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "manage products"); err != nil {
		return nil, err
	}

	return changeProduct(ctx, h.uowFactory, cmd.ProductID(), func(p *product.Product) error {
		p.RemoveAttribute(cmd.Name())
		return nil
	})
}

func changeProduct(
	ctx context.Context,
	uowFactory ProductUoWFactory,
	productID int64,
	change func(p *product.Product) error,
) (*product.Product, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err = change(p); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

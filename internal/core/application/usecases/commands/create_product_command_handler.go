package commands

import (
	"context"

	"sales/internal/core/domain/model/product"
)

// CreateProductCommandHandler stores new catalog products. Only administrators
// may add products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored product with its generated id.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "manage products"); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(
		cmd.Name(),
		cmd.Type(),
		cmd.Weight(),
		cmd.Quantity(),
		cmd.State(),
		cmd.Price(),
		cmd.Attributes(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

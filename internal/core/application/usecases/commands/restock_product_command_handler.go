package commands

import (
	"context"

	"sales/internal/core/domain/model/product"
)

// RestockProductCommandHandler brings a product to the requested stock level
// by increasing or decreasing it by the difference. Only administrators may
// change stock.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{uowFactory: uowFactory}
}

func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "manage products"); err != nil {
		return nil, err
	}

	return changeProduct(ctx, h.uowFactory, cmd.ProductID(), func(p *product.Product) error {
		switch delta := cmd.Quantity() - p.Quantity(); {
		case delta > 0:
			return p.IncreaseStock(delta)
		case delta < 0:
			return p.DecreaseStock(-delta)
		default:
			return nil
		}
	})
}

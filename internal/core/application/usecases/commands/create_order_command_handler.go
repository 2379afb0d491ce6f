package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
)

// CreateOrderCommandHandler places orders. Within one transaction it checks
// stock for every line, builds the order, validates it against the business
// rules, stores it and takes the stock. Any failure leaves both the catalog
// and the order table untouched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, engine, publisher, time.Now)
//	cmd, _ := NewCreateOrderCommand(session, []int64{7}, []int{2})
//
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPolicyViolation) {
//	    // rejected by stock or business rules, nothing was persisted
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  OrderValidator
	publisher  ports.OrderEventPublisher
	keeper     services.StockKeeper
	now        Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	validator OrderValidator,
	publisher ports.OrderEventPublisher,
	now Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		publisher:  publisher,
		keeper:     services.NewStockKeeper(),
		now:        now,
	}
}

// Handle processes the order creation command and returns the stored order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	products, err := productRepo.GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	if err = h.keeper.CheckAvailability(cmd.Lines(), products); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.ProductIDs(), cmd.Quantities(), cmd.Session().Email(), h.now())
	if err != nil {
		return nil, err
	}

	if err = h.validator.Validate(o, products); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = h.keeper.Take(o, products); err != nil {
		return nil, err
	}

	for _, id := range o.ProductIDs() {
		if err = productRepo.Update(ctx, products[id]); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, publish(ctx, h.publisher, o.PullEvents())
}

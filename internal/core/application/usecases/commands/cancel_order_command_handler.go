package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and puts its stock back in the
// same transaction. Stock is only returned when the transition succeeds.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, publisher, time.Now)
//	cmd, _ := NewCancelOrderCommand(session, 42)
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAccessDenied):
//	    // somebody else's order
//	case errors.Is(err, errs.ErrPolicyViolation):
//	    // too late, or already past Placed
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	keeper     services.StockKeeper
	now        Clock
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	now Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		keeper:     services.NewStockKeeper(),
		now:        now,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.Session().CanActFor(o.Owner()) {
		return nil, errs.NewAccessDeniedError("cancel this order", cmd.Session().Email().String())
	}

	if err = o.Cancel(h.now()); err != nil {
		return nil, err
	}

	products, err := productRepo.GetByIDs(ctx, o.ProductIDs())
	if err != nil {
		return nil, err
	}

	if err = h.keeper.Return(o, products); err != nil {
		return nil, err
	}

	for _, id := range o.ProductIDs() {
		if err = productRepo.Update(ctx, products[id]); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, publish(ctx, h.publisher, o.PullEvents())
}

package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ProcessOrderCommandHandler moves an order into processing and stamps the
// process time.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        Clock
}

func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	now Clock,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle returns the updated order. A non-admin session is rejected before
// any storage access.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "process orders"); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.uowFactory, h.publisher, cmd.OrderID(), func(o *order.Order) error {
		return o.Process(h.now())
	})
}

// transitionOrder loads one order, applies change and persists the result in
// a single transaction. Events are published after commit.
func transitionOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	orderID int64,
	change func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = change(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, publish(ctx, publisher, o.PullEvents())
}

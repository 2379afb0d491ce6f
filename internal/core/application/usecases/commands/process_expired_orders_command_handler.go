package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ProcessExpiredOrdersCommandHandler processes, in one transaction, all
// Placed orders created more than order.CancellationWindow ago.
//
// It is driven by the expired-orders job only. There is no session and no
// acting user, so unlike ProcessOrderCommandHandler it performs no admin
// check; keep it off the HTTP surface.
type ProcessExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        Clock
}

func NewProcessExpiredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	now Clock,
) ProcessExpiredOrdersCommandHandler {
	return ProcessExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle returns how many orders were moved to InProcess.
func (h *ProcessExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	now := h.now()

	orders, err := orderRepo.GetAllPlacedBefore(ctx, now.Add(-order.CancellationWindow))
	if err != nil {
		return 0, err
	}

	var events []order.StateChanged
	for _, o := range orders {
		if err = o.Process(now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}

		events = append(events, o.PullEvents()...)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), publish(ctx, h.publisher, events)
}

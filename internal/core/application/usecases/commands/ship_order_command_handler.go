package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ShipOrderCommandHandler ships a processed order and stamps the ship time.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        Clock
}

func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	now Clock,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Session(), "ship orders"); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.uowFactory, h.publisher, cmd.OrderID(), func(o *order.Order) error {
		return o.Ship(h.now())
	})
}

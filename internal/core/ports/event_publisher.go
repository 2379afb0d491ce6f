package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order state changes to interested parties.
// It is called after the transaction that produced the events has committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StateChanged) error
}

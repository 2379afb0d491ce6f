package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items and assigns the
	// generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the state and timestamps of an existing order.
	// Line items never change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllPlacedBefore retrieves every order still in Placed state that was
	// created strictly before cutoff, oldest first.
	GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

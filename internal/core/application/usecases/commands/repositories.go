// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and publishing of the resulting order events after commit.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/rules"
	"sales/internal/core/ports"
)

// ErrEventsNotPublished is returned next to a successful result when the
// transaction committed but its events could not be delivered.
var ErrEventsNotPublished = errors.New("order events were not published")

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages transactions across both order and product aggregates.
	// Used whenever stock moves together with an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// OrderValidator checks a candidate order against the business rules.
type OrderValidator interface {
	Validate(o *order.Order, products rules.Products) error
}

// Clock returns the current time. Handlers take it as a dependency so that
// time-bound transitions can be tested.
type Clock func() time.Time

func publish(ctx context.Context, publisher ports.OrderEventPublisher, events []order.StateChanged) error {
	if len(events) == 0 {
		return nil
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		return fmt.Errorf("%w: %w", ErrEventsNotPublished, err)
	}
	return nil
}

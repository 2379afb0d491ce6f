package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Stock changes and order writes
// made through its repositories commit or roll back together.
type UnitOfWork interface {
	// Begin opens the transaction. A second call while open is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all writes visible. It fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback discards pending writes.
	// Returns nil when there is nothing to roll back.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository on the open transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a product repository on the open transaction.
	ProductRepository() ProductRepository
}

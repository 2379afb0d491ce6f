// Package postgres provides the GORM implementation of the Unit of Work.
// Every repository handed out by a GormUnitOfWork runs inside the
// transaction opened by Begin, so stock changes and order writes commit or
// roll back together. Inside a transaction the repositories read with
// SELECT ... FOR UPDATE: two units of work touching the same order or
// product run one after the other, and the second sees what the first
// committed.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.ProductRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/productrepo"
	"sales/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. It fails with gorm.ErrInvalidTransaction
// when Begin was not called.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Without an open transaction, for
// instance after Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns a locking repository on the open transaction, or
// a plain one on the pool when no transaction is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.tx != nil {
		return orderrepo.NewGormOrderRepository(uow.tx).ForUpdate()
	}
	return orderrepo.NewGormOrderRepository(uow.db)
}

// ProductRepository returns a locking repository on the open transaction, or
// a plain one on the pool when no transaction is open.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	if uow.tx != nil {
		return productrepo.NewGormProductRepository(uow.tx).ForUpdate()
	}
	return productrepo.NewGormProductRepository(uow.db)
}

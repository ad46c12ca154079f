// Package postgres provides the GORM-based storage adapter: connection
// setup, schema migration and the Unit of Work.
//
// A unit of work wraps one database transaction. Repositories obtained
// between Begin and Commit/Rollback run inside it and lock the rows they
// load with SELECT ... FOR UPDATE, so a find-validate-write sequence
// cannot interleave with a concurrent one on the same row.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.OrderRepository()
//	o, err := repo.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o
//	if err := repo.Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork. Each instance holds its own transaction
// and must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again while the transaction is
// open does nothing.
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

// Commit returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction if no transaction is open,
// which is the normal outcome of a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DishRepository runs on the open transaction, or on the plain connection
// in autocommit mode when there is none.
func (uow *GormUnitOfWork) DishRepository() ports.DishRepository {
	if uow.tx != nil {
		return dishrepo.NewLockingGormDishRepository(uow.tx)
	}
	return dishrepo.NewGormDishRepository(uow.db)
}

// OrderRepository runs on the open transaction, or on the plain connection
// in autocommit mode when there is none.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.tx != nil {
		return orderrepo.NewLockingGormOrderRepository(uow.tx)
	}
	return orderrepo.NewGormOrderRepository(uow.db)
}

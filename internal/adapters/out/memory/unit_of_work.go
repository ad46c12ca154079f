package memory

import (
	"context"
	"errors"

	"grubdash/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; create one per command.
//
// Repositories obtained before Begin write through to the store one
// operation at a time.
type UnitOfWork struct {
	store   *Store
	working *state
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}

	if err := uow.store.lock(ctx); err != nil {
		return err
	}
	uow.working = uow.store.snapshot().clone()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.store.publish(uow.working)
	uow.working = nil
	uow.store.unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.working = nil
	uow.store.unlock()
	return nil
}

func (uow *UnitOfWork) DishRepository() ports.DishRepository {
	return &DishRepository{exec: uow.exec}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{exec: uow.exec}
}

func (uow *UnitOfWork) exec(ctx context.Context, fn func(*state) error) error {
	if uow.working != nil {
		return fn(uow.working)
	}
	return uow.store.write(ctx, fn)
}

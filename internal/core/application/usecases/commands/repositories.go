// Package commands contains the operations that modify dishes and orders.
// Every command follows the same pattern: run the request pipeline, mutate
// the aggregate, persist it inside a unit of work and commit.
package commands

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

// Unit of Work interfaces scoped to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DishRepoFactory provides the dish repository bound to a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides the order repository bound to a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DishUoW manages transactions for dish-only operations.
	DishUoW interface {
		TxManager
		DishRepoFactory
	}

	// DishUoWFactory creates new dish units of work.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// findDish returns nil without error when routeID names no dish.
func findDish(ctx context.Context, repo ports.DishRepository, routeID string) (*dish.Dish, error) {
	id, err := kernel.IDFromString(routeID)
	if err != nil {
		return nil, nil //nolint:nilnil // absence is reported by the pipeline
	}

	d, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // absence is reported by the pipeline
	}
	return d, err
}

// findOrder returns nil without error when routeID names no order.
func findOrder(ctx context.Context, repo ports.OrderRepository, routeID string) (*order.Order, error) {
	id, err := kernel.IDFromString(routeID)
	if err != nil {
		return nil, nil //nolint:nilnil // absence is reported by the pipeline
	}

	o, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // absence is reported by the pipeline
	}
	return o, err
}

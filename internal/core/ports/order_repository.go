package ports

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order. A missing order yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Remove deletes an order. A missing order yields an errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.ID) error
}

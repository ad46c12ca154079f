// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work and the id generator.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for dish aggregates.
// There is no Remove: dishes are never deleted.
type DishRepository interface {
	// Add persists a new dish. The dish must not already exist.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update persists the current state of an existing dish.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get loads a dish. A missing dish yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)

	// List returns every dish in insertion order.
	List(ctx context.Context) ([]*dish.Dish, error)
}

package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves every dish in creation order.
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}

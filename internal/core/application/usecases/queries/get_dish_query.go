package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery retrieves the dish named by a route id.
type GetDishQuery struct {
	routeID string

	guard guard.ConstructorGuard
}

func NewGetDishQuery(routeID string) GetDishQuery {
	return GetDishQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

func (q GetDishQuery) RouteID() string {
	return q.routeID
}

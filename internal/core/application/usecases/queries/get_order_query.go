package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the order named by a route id.
type GetOrderQuery struct {
	routeID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(routeID string) GetOrderQuery {
	return GetOrderQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) RouteID() string {
	return q.routeID
}

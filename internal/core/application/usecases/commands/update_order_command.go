package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a request to change the order at RouteID.
// Validation happens in the handler against the loaded order.
type UpdateOrderCommand struct {
	routeID string
	payload order.Payload

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(routeID string, payload order.Payload) UpdateOrderCommand {
	return UpdateOrderCommand{
		routeID: routeID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) RouteID() string {
	return c.routeID
}

func (c UpdateOrderCommand) Payload() order.Payload {
	return c.payload
}

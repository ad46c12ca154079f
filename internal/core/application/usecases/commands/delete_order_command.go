package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand is a request to remove the order at RouteID.
type DeleteOrderCommand struct {
	routeID string

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(routeID string) DeleteOrderCommand {
	return DeleteOrderCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) RouteID() string {
	return c.routeID
}

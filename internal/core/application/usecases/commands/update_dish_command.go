package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand is a request to replace the fields of the dish at RouteID.
// The payload is validated by the handler, after the dish has been loaded,
// so that "not found" and "id mismatch" are reported before field errors.
type UpdateDishCommand struct {
	routeID string
	payload dish.Payload

	guard guard.ConstructorGuard
}

func NewUpdateDishCommand(routeID string, payload dish.Payload) UpdateDishCommand {
	return UpdateDishCommand{
		routeID: routeID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) RouteID() string {
	return c.routeID
}

func (c UpdateDishCommand) Payload() dish.Payload {
	return c.payload
}

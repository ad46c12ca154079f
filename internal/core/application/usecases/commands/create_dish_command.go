package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand is a validated request to add a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateDishCommand(dish.Payload{
//	    Name: "Taco", Description: "Spicy", Price: validation.NumberOf(5), ImageURL: "http://x",
//	})
//	if err != nil {
//	    return err // *validation.Failure
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct {
	fields dish.Fields

	guard guard.ConstructorGuard
}

// NewCreateDishCommand runs the create pipeline and returns its first failure.
func NewCreateDishCommand(payload dish.Payload) (CreateDishCommand, error) {
	if err := dish.ValidateCreate(payload); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		fields: payload.Fields(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Fields() dish.Fields {
	return c.fields
}

package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a validated request to place an order.
// Any status in the payload is ignored; new orders are pending.
type CreateOrderCommand struct {
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand runs the create pipeline and returns its first failure.
func NewCreateOrderCommand(payload order.Payload) (CreateOrderCommand, error) {
	if err := order.ValidateCreate(payload); err != nil {
		return CreateOrderCommand{}, err
	}

	details, err := payload.Details()
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

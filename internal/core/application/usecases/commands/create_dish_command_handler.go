package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// CreateDishCommandHandler adds a dish with a server-assigned id.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
	ids        ports.IDGenerator
}

func NewCreateDishCommandHandler(uowFactory DishUoWFactory, ids ports.IDGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle stores the new dish and returns it.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := dish.NewDish(h.ids.Next(), cmd.Fields())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DishRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

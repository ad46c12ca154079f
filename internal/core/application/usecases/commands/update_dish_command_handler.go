package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// UpdateDishCommandHandler replaces the fields of an existing dish in place.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle loads the dish, runs the update pipeline, and saves the result.
// The whole sequence runs inside one unit of work.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DishRepository()
	existing, err := findDish(ctx, repo, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	if err = dish.ValidateUpdate(cmd.RouteID(), cmd.Payload(), existing); err != nil {
		return nil, err
	}

	if err = existing.Update(cmd.Payload().Fields()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

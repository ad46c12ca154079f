package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler removes pending orders.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle removes the order if it exists and is still pending.
// An order in any other status stays in the store.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := findOrder(ctx, repo, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = order.ValidateDelete(cmd.RouteID(), existing); err != nil {
		return err
	}

	if err = repo.Remove(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

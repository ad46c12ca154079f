package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler changes an existing order's details and status.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, runs the update pipeline (existence, id match,
// status presence, status transition, fields) and saves the result.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	existing, err := findOrder(ctx, repo, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	if err = order.ValidateUpdate(cmd.RouteID(), payload, existing); err != nil {
		return nil, err
	}

	details, err := payload.Details()
	if err != nil {
		return nil, err
	}

	if err = existing.Update(details, payload.Status); err != nil {
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

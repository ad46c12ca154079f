package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler places a new pending order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.NewUUIDGenerator())
//	cmd, err := NewCreateOrderCommand(payload)
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, ids ports.IDGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle stores the new order and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(h.ids.Next(), cmd.Details())
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

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

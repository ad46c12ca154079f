package commands_test

import (
	"errors"
	"testing"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderPayload() order.Payload {
	return order.Payload{
		DeliverTo:    gofakeit.Street(),
		MobileNumber: gofakeit.Phone(),
		HasDishes:    true,
		Dishes: []order.LineItemPayload{{
			DishID:      ptr(kernel.NewID().String()),
			Name:        ptr("Taco"),
			Description: ptr("Spicy"),
			Price:       validation.NumberOf(5),
			ImageURL:    ptr("http://x"),
			Quantity:    validation.NumberOf(2),
		}},
	}
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	details, err := orderPayload().Details()
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewID(), details, status)
	require.NoError(t, err)
	return o
}

func orderUoW(t *testing.T, repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	t.Helper()
	ctx := t.Context()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(orderPayload())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Len(t, cmd.Details().Items, 1)
	assert.Equal(t, 2, cmd.Details().Items[0].Quantity())

	p := orderPayload()
	p.Dishes[0].Quantity = validation.NonNumeric()
	_, err = commands.NewCreateOrderCommand(p)
	f, ok := validation.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, validation.InvalidQuantity, f.Kind)
	assert.Equal(t, "Dish 0 must have a quantity that is an integer greater than 0.", f.Message)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID()
	p := orderPayload()
	p.Status = "delivered"
	cmd, err := commands.NewCreateOrderCommand(p)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedIDs{id: id})
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(placed.ID()))
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, p.DeliverTo, placed.DeliverTo())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedIDs{id: kernel.NewID()})

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	p := orderPayload()
	p.Status = string(order.OutForDelivery)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", ctx, existing).Return(nil).Once()
	uow, factory := orderUoW(t, repo)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, commands.NewUpdateOrderCommand(existing.ID().String(), p))

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, updated.Status())
	assert.Equal(t, p.DeliverTo, updated.DeliverTo())
	assert.Equal(t, p.MobileNumber, updated.MobileNumber())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_Failures(t *testing.T) {
	tests := map[string]struct {
		status  order.Status
		mutate  func(p *order.Payload)
		kind    validation.Kind
		message string
	}{
		"delivered order is immutable": {
			status:  order.Delivered,
			mutate:  func(p *order.Payload) { p.Status = "pending" },
			kind:    validation.TerminalStateViolation,
			message: order.MsgDeliveredIsFinal,
		},
		"missing status": {
			status:  order.Preparing,
			mutate:  func(p *order.Payload) { p.Status = "" },
			kind:    validation.MissingField,
			message: order.MsgStatusInvalid,
		},
		"unknown status": {
			status:  order.Preparing,
			mutate:  func(p *order.Payload) { p.Status = "invalid" },
			kind:    validation.InvalidStatus,
			message: order.MsgStatusInvalid,
		},
		"id mismatch": {
			status: order.Pending,
			mutate: func(p *order.Payload) { p.ID = "other"; p.Status = "pending" },
			kind:   validation.IDMismatch,
		},
		"empty dishes": {
			status:  order.Pending,
			mutate:  func(p *order.Payload) { p.Status = "pending"; p.Dishes = nil },
			kind:    validation.MissingField,
			message: order.MsgDishesEmpty,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			existing := storedOrder(t, tc.status)
			before := existing.Details()
			p := orderPayload()
			tc.mutate(&p)

			repo := new(MockOrderRepository)
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
			uow, factory := orderUoW(t, repo)

			h := commands.NewUpdateOrderCommandHandler(factory)
			_, err := h.Handle(ctx, commands.NewUpdateOrderCommand(existing.ID().String(), p))

			f, ok := validation.AsFailure(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, f.Kind)
			if tc.message != "" {
				assert.Equal(t, tc.message, f.Message)
			}
			assert.Equal(t, tc.status, existing.Status())
			assert.Equal(t, before, existing.Details())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, mock.Anything).Return(nil, errs.NewObjectNotFoundError("order", "o9")).Once()
	_, factory := orderUoW(t, repo)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, commands.NewUpdateOrderCommand("o9", orderPayload()))

	f, ok := validation.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, validation.NotFound, f.Kind)
	assert.Equal(t, "Order does not exist: o9.", f.Message)
	assert.Equal(t, 404, f.Status())
}

func TestDeleteOrderCommandHandler_Handle_Pending(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	repo.On("Remove", ctx, existing.ID()).Return(nil).Once()
	uow, factory := orderUoW(t, repo)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.NewDeleteOrderCommand(existing.ID().String()))

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotPending(t *testing.T) {
	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			existing := storedOrder(t, status)

			repo := new(MockOrderRepository)
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
			uow, factory := orderUoW(t, repo)

			h := commands.NewDeleteOrderCommandHandler(factory)
			err := h.Handle(ctx, commands.NewDeleteOrderCommand(existing.ID().String()))

			f, ok := validation.AsFailure(err)
			require.True(t, ok)
			assert.Equal(t, validation.DeleteNotAllowed, f.Kind)
			assert.Equal(t, order.MsgDeleteNotPending, f.Message)
			assert.Equal(t, 400, f.Status())
			repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	repo.On("Remove", ctx, existing.ID()).Return(errors.New("remove failed")).Once()
	uow, factory := orderUoW(t, repo)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.NewDeleteOrderCommand(existing.ID().String()))

	require.EqualError(t, err, "remove failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewDeleteOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.DeleteOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}

func ptr[T any](v T) *T {
	return &v
}

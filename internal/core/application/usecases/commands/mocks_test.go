package commands_test

import (
	"context"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*dish.Dish)
	return d, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockDishUoW struct{ MockTx }

func (m *MockDishUoW) DishRepository() ports.DishRepository {
	return m.Called().Get(0).(ports.DishRepository)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	return m.Called().Get(0).(commands.DishUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

// fixedIDs hands out a predetermined id.
type fixedIDs struct{ id kernel.ID }

func (f fixedIDs) Next() kernel.ID { return f.id }

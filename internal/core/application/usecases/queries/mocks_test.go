package queries_test

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockDishReader struct{ mock.Mock }

func (m *MockDishReader) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishReader) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(map[order.Status]int)
	return c, args.Error(1)
}

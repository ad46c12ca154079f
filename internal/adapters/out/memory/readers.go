package memory

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// DishReader serves dish queries from the last committed state.
type DishReader struct {
	store *Store
}

func NewDishReader(store *Store) DishReader {
	return DishReader{store: store}
}

func (r DishReader) List(_ context.Context) ([]*dish.Dish, error) {
	return listDishes(r.store.snapshot())
}

func (r DishReader) Get(_ context.Context, id kernel.ID) (*dish.Dish, error) {
	return getDish(r.store.snapshot(), id)
}

// OrderReader serves order queries from the last committed state.
type OrderReader struct {
	store *Store
}

func NewOrderReader(store *Store) OrderReader {
	return OrderReader{store: store}
}

func (r OrderReader) List(_ context.Context) ([]*order.Order, error) {
	return listOrders(r.store.snapshot())
}

func (r OrderReader) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	return getOrder(r.store.snapshot(), id)
}

func (r OrderReader) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	return countOrdersByStatus(r.store.snapshot()), nil
}

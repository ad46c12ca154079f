package memory

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on a unit of work.
type OrderRepository struct {
	exec executor
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.exec(ctx, func(s *state) error {
		if !s.orders.insert(aggregate.ID().String(), orderFromDomain(aggregate)) {
			return errs.NewValueIsInvalidError("order id " + aggregate.ID().String())
		}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.exec(ctx, func(s *state) error {
		if !s.orders.replace(aggregate.ID().String(), orderFromDomain(aggregate)) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	var found *order.Order
	err := r.exec(ctx, func(s *state) error {
		var err error
		found, err = getOrder(s, id)
		return err
	})
	return found, err
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.exec(ctx, func(s *state) error {
		var err error
		orders, err = listOrders(s)
		return err
	})
	return orders, err
}

func (r *OrderRepository) Remove(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.exec(ctx, func(s *state) error {
		if !s.orders.remove(id.String()) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return nil
	})
}

func getOrder(s *state, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := s.orders.get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return record.toDomain()
}

func listOrders(s *state) ([]*order.Order, error) {
	records := s.orders.all()
	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		o, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func countOrdersByStatus(s *state) map[order.Status]int {
	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, record := range s.orders.all() {
		counts[record.status]++
	}
	return counts
}

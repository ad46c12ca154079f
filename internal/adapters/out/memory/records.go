package memory

import (
	"slices"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// Rows hold plain values so a published state never shares mutable
// aggregates with callers.
type (
	dishRecord struct {
		id     kernel.ID
		fields dish.Fields
	}

	orderRecord struct {
		id      kernel.ID
		details order.Details
		status  order.Status
	}
)

func dishFromDomain(d *dish.Dish) dishRecord {
	return dishRecord{id: d.ID(), fields: d.Fields()}
}

func (r dishRecord) toDomain() (*dish.Dish, error) {
	return dish.NewDish(r.id, r.fields)
}

func orderFromDomain(o *order.Order) orderRecord {
	return orderRecord{id: o.ID(), details: o.Details(), status: o.Status()}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	details := r.details
	details.Items = slices.Clone(details.Items)
	return order.RestoreOrder(r.id, details, r.status)
}

// state is one consistent version of the whole store.
type state struct {
	dishes *table[dishRecord]
	orders *table[orderRecord]
}

func newState() *state {
	return &state{
		dishes: newTable[dishRecord](),
		orders: newTable[orderRecord](),
	}
}

func (s *state) clone() *state {
	return &state{
		dishes: s.dishes.clone(),
		orders: s.orders.clone(),
	}
}

package queries

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
	"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
)

// GetOrderStatusSummaryQuery counts orders per status.
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// StatusCount is the number of orders currently in Status.
type StatusCount struct {
	Status string
	Count  int
}

// GetOrderStatusSummaryQueryResponse lists every recognized status in
// lifecycle order, including those with no orders.
type GetOrderStatusSummaryQueryResponse struct {
	Counts []StatusCount
	Total  int
}

// Backlog is the number of orders not yet delivered.
func (r GetOrderStatusSummaryQueryResponse) Backlog() int {
	backlog := r.Total
	for _, c := range r.Counts {
		if c.Status == order.Delivered.String() {
			backlog -= c.Count
		}
	}
	return backlog
}

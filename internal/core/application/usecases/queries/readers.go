// Package queries contains read operations for retrieving system state.
// Queries never modify data and return read models shaped for the
// HTTP adapter and background jobs.
package queries

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// DishReader reads committed dishes outside any unit of work.
type DishReader interface {
	List(ctx context.Context) ([]*dish.Dish, error)
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)
}

// OrderReader reads committed orders outside any unit of work.
type OrderReader interface {
	List(ctx context.Context) ([]*order.Order, error)
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}

// DishResponse is the read model of a dish.
type DishResponse struct {
	ID          string
	Name        string
	Description string
	Price       int
	ImageURL    string
}

// LineItemResponse is one dish line of an order.
// Snapshot fields are nil when the client did not send them.
type LineItemResponse struct {
	DishID      *string
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Quantity    int
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []LineItemResponse
}

func NewDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	dishes := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		snapshot := item.Dish()
		dishes = append(dishes, LineItemResponse{
			DishID:      snapshot.DishID,
			Name:        snapshot.Name,
			Description: snapshot.Description,
			Price:       snapshot.Price,
			ImageURL:    snapshot.ImageURL,
			Quantity:    item.Quantity(),
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

// lookupID maps a route id onto a kernel id; ok is false for ids that
// cannot name any stored entity.
func lookupID(routeID string) (kernel.ID, bool) {
	id, err := kernel.IDFromString(routeID)
	return id, err == nil
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}

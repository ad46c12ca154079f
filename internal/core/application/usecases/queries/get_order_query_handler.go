package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

type GetOrderQueryHandler struct {
	reader OrderReader
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns a NotFound failure when no order has the route id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	id, ok := lookupID(query.RouteID())
	if !ok {
		return OrderResponse{}, order.NotFound(query.RouteID())
	}

	o, err := h.reader.Get(ctx, id)
	if isNotFound(err) {
		return OrderResponse{}, order.NotFound(query.RouteID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}

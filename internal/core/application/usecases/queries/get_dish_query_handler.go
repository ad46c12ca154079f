package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

type GetDishQueryHandler struct {
	reader DishReader
}

func NewGetDishQueryHandler(reader DishReader) GetDishQueryHandler {
	return GetDishQueryHandler{reader: reader}
}

// Handle returns a NotFound failure when no dish has the route id.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (DishResponse, error) {
	if err := query.Validate(); err != nil {
		return DishResponse{}, err
	}

	id, ok := lookupID(query.RouteID())
	if !ok {
		return DishResponse{}, dish.NotFound(query.RouteID())
	}

	d, err := h.reader.Get(ctx, id)
	if isNotFound(err) {
		return DishResponse{}, dish.NotFound(query.RouteID())
	}
	if err != nil {
		return DishResponse{}, err
	}

	return NewDishResponse(d), nil
}

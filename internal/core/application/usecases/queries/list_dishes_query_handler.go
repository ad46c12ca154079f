package queries

import (
	"context"
)

// ListDishesQueryHandler returns the dish catalog.
//
// Example:
//
//	handler := NewListDishesQueryHandler(reader)
//	dishes, err := handler.Handle(ctx, NewListDishesQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list dishes: %w", err)
//	}
type ListDishesQueryHandler struct {
	reader DishReader
}

func NewListDishesQueryHandler(reader DishReader) ListDishesQueryHandler {
	return ListDishesQueryHandler{reader: reader}
}

// Handle returns an empty, non-nil slice when there are no dishes.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		result = append(result, NewDishResponse(d))
	}
	return result, nil
}

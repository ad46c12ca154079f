package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// DishSnapshot is the dish information a client attaches to a line item.
// It is stored and returned as sent. Every field is optional and nil means
// the client did not send it; an empty string or a 0 price is kept.
type DishSnapshot struct {
	DishID      *string
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// LineItem is one entry of an order: a dish reference and a quantity.
type LineItem struct {
	dish     DishSnapshot
	quantity int
}

// NewLineItem builds a line item. Quantity must be greater than 0.
func NewLineItem(dish DishSnapshot, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{dish: dish, quantity: quantity}, nil
}

func (li LineItem) Dish() DishSnapshot {
	return li.dish
}

func (li LineItem) Quantity() int {
	return li.quantity
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ErrInvalidBody is returned when the request body is not valid JSON for
// the endpoint.
var ErrInvalidBody = errors.New("Invalid request body")

// bindBody decodes the JSON body into dest. An empty body decodes as {} so
// the validation pipeline reports the first missing field.
func bindBody(ctx echo.Context, dest any) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ErrInvalidBody
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return ErrInvalidBody
	}
	return nil
}

func toDish(d queries.DishResponse) servers.Dish {
	return servers.Dish{
		Id:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageUrl:    d.ImageURL,
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	dishes := make([]servers.LineItem, len(o.Dishes))
	for i, item := range o.Dishes {
		dishes[i] = servers.LineItem{
			Id:          item.DishID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			ImageUrl:    item.ImageURL,
			Quantity:    item.Quantity,
		}
	}

	return servers.Order{
		Id:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       servers.OrderStatus(o.Status),
		Dishes:       dishes,
	}
}

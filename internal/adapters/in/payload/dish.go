package payload

import (
	"grubdash/internal/core/domain/model/dish"
)

// DishRequest is the body of POST /dishes and PUT /dishes/:dishId.
type DishRequest struct {
	Data DishData `json:"data"`
}

type DishData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Number `json:"price"`
	ImageURL    string `json:"image_url"`
}

func (d DishData) Payload() dish.Payload {
	return dish.Payload{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price.Value,
		ImageURL:    d.ImageURL,
	}
}

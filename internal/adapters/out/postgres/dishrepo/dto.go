// Package dishrepo maps dish aggregates onto the dishes table.
package dishrepo

import (
	"time"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishDTO is one row of the dishes table.
type DishDTO struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null;check:price > 0"`
	ImageURL    string `gorm:"column:image_url;not null"`
	CreatedAt   time.Time
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return dish.NewDish(id, dish.Fields{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		ImageURL:    dto.ImageURL,
	})
}

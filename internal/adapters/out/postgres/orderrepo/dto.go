// Package orderrepo maps order aggregates onto the orders and
// order_line_items tables.
package orderrepo

import (
	"time"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table together with its line items.
type OrderDTO struct {
	ID           string        `gorm:"type:text;primaryKey"`
	DeliverTo    string        `gorm:"not null"`
	MobileNumber string        `gorm:"not null"`
	Status       string        `gorm:"type:text;not null;index"`
	Items        []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO stores one dish line of an order. Position keeps the
// client's ordering of the dishes list. Snapshot columns are NULL when the
// client did not send the field.
type LineItemDTO struct {
	ID          uint     `gorm:"primaryKey"`
	OrderID     string   `gorm:"type:text;not null;index"`
	Position    int      `gorm:"not null"`
	DishID      *string  `gorm:"type:text"`
	Name        *string  `gorm:"type:text"`
	Description *string  `gorm:"type:text"`
	Price       *float64 `gorm:"type:double precision"`
	ImageURL    *string  `gorm:"column:image_url;type:text"`
	Quantity    int      `gorm:"not null;check:quantity > 0"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		snapshot := item.Dish()
		dtos = append(dtos, LineItemDTO{
			OrderID:     o.ID().String(),
			Position:    i,
			DishID:      snapshot.DishID,
			Name:        snapshot.Name,
			Description: snapshot.Description,
			Price:       snapshot.Price,
			ImageURL:    snapshot.ImageURL,
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Items:        dtos,
	}
}

// toDomain expects dto.Items sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(order.DishSnapshot{
			DishID:      itemDTO.DishID,
			Name:        itemDTO.Name,
			Description: itemDTO.Description,
			Price:       itemDTO.Price,
			ImageURL:    itemDTO.ImageURL,
		}, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, order.Details{
		DeliverTo:    dto.DeliverTo,
		MobileNumber: dto.MobileNumber,
		Items:        items,
	}, order.Status(dto.Status))
}

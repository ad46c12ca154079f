package payload

import (
	"bytes"
	"encoding/json"

	"grubdash/internal/core/domain/model/order"
)

// OrderRequest is the body of POST /orders and PUT /orders/:orderId.
type OrderRequest struct {
	Data OrderData `json:"data"`
}

// OrderData keeps dishes raw: a dishes value that is not a list must still
// reach validation instead of failing the decode.
type OrderData struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

func (o OrderData) Payload() order.Payload {
	dishes, present := parseDishes(o.Dishes)
	return order.Payload{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       o.Status,
		Dishes:       dishes,
		HasDishes:    present,
	}
}

// parseDishes treats null like an absent field. Elements that are not
// objects decode as empty line items and fail on quantity.
func parseDishes(raw json.RawMessage) ([]order.LineItemPayload, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, true
	}

	items := make([]order.LineItemPayload, 0, len(elements))
	for _, element := range elements {
		var fields map[string]json.RawMessage
		_ = json.Unmarshal(element, &fields)

		items = append(items, order.LineItemPayload{
			DishID:      stringField(fields["id"]),
			Name:        stringField(fields["name"]),
			Description: stringField(fields["description"]),
			Price:       parseNumber(fields["price"]),
			ImageURL:    stringField(fields["image_url"]),
			Quantity:    parseNumber(fields["quantity"]),
		})
	}
	return items, true
}

// stringField returns nil for an absent field and for anything but a JSON
// string. An empty string is kept.
func stringField(raw json.RawMessage) *string {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

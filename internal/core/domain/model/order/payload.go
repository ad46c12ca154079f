package order

import (
	"fmt"

	"grubdash/internal/core/domain/validation"
)

const (
	MsgDeliverToRequired    = "Order must include a deliverTo."
	MsgMobileNumberRequired = "Order must include a mobileNumber."
	MsgDishesRequired       = "Order must include a dish."
	MsgDishesEmpty          = "Order must include at least one dish."
)

// LineItemPayload is one element of the dishes list in a request.
// Only Quantity is validated; the other fields form the dish snapshot.
type LineItemPayload struct {
	DishID      *string
	Name        *string
	Description *string
	Price       validation.Number
	ImageURL    *string
	Quantity    validation.Number
}

// Payload is an order as sent by a client in a create or update request.
//
// HasDishes is false when the request carried no dishes field at all.
// A dishes field that is not a list arrives as HasDishes with no Dishes.
type Payload struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []LineItemPayload
	HasDishes    bool
}

// Details converts a validated payload into order attributes.
func (p Payload) Details() (Details, error) {
	items := make([]LineItem, 0, len(p.Dishes))
	for _, d := range p.Dishes {
		quantity, _ := d.Quantity.PositiveInt()
		var price *float64
		if v, ok := d.Price.Float(); ok {
			price = &v
		}
		item, err := NewLineItem(DishSnapshot{
			DishID:      d.DishID,
			Name:        d.Name,
			Description: d.Description,
			Price:       price,
			ImageURL:    d.ImageURL,
		}, quantity)
		if err != nil {
			return Details{}, err
		}
		items = append(items, item)
	}

	return Details{
		DeliverTo:    p.DeliverTo,
		MobileNumber: p.MobileNumber,
		Items:        items,
	}, nil
}

// UpdateRequest bundles what the update pipeline inspects.
// Existing is nil when no order matches RouteID.
type UpdateRequest struct {
	RouteID  string
	Payload  Payload
	Existing *Order
}

// DeleteRequest bundles what the delete pipeline inspects.
type DeleteRequest struct {
	RouteID  string
	Existing *Order
}

var fieldRules = validation.NewPipeline(
	func(p Payload) error { return validation.Required(p.DeliverTo, "deliverTo", MsgDeliverToRequired) },
	func(p Payload) error {
		return validation.Required(p.MobileNumber, "mobileNumber", MsgMobileNumberRequired)
	},
	hasDishes,
	dishesNotEmpty,
	quantitiesArePositiveIntegers,
)

var updateRules = validation.NewPipeline(
	func(r UpdateRequest) error { return exists(r.RouteID, r.Existing) },
	idMatchesRoute,
	func(r UpdateRequest) error { return validation.Required(r.Payload.Status, "status", MsgStatusInvalid) },
	func(r UpdateRequest) error { return r.Existing.Status().ValidateTransition(r.Payload.Status) },
	func(r UpdateRequest) error { return fieldRules.Run(r.Payload) },
)

var deleteRules = validation.NewPipeline(
	func(r DeleteRequest) error { return exists(r.RouteID, r.Existing) },
	func(r DeleteRequest) error { return r.Existing.ValidateDelete() },
)

// ValidateCreate runs the create pipeline. The payload status is ignored:
// new orders start pending.
func ValidateCreate(p Payload) error {
	return fieldRules.Run(p)
}

// ValidateUpdate runs the update pipeline: existence, id match, status
// presence, status transition, then the create field rules.
func ValidateUpdate(routeID string, p Payload, existing *Order) error {
	return updateRules.Run(UpdateRequest{RouteID: routeID, Payload: p, Existing: existing})
}

// ValidateDelete runs the delete pipeline: existence, then the pending check.
func ValidateDelete(routeID string, existing *Order) error {
	return deleteRules.Run(DeleteRequest{RouteID: routeID, Existing: existing})
}

// NotFound is the failure for a route id with no order behind it.
func NotFound(id string) *validation.Failure {
	return validation.NewNotFound(id, fmt.Sprintf("Order does not exist: %s.", id))
}

func exists(routeID string, existing *Order) error {
	if existing == nil {
		return NotFound(routeID)
	}
	return nil
}

func idMatchesRoute(r UpdateRequest) error {
	return validation.MatchingID(r.Payload.ID, r.RouteID, fmt.Sprintf(
		"Order id does not match route id. Order: %s, Route: %s", r.Payload.ID, r.RouteID))
}

func hasDishes(p Payload) error {
	if !p.HasDishes {
		return validation.NewMissingField("dishes", MsgDishesRequired)
	}
	return nil
}

func dishesNotEmpty(p Payload) error {
	if len(p.Dishes) == 0 {
		return validation.NewMissingField("dishes", MsgDishesEmpty)
	}
	return nil
}

// quantitiesArePositiveIntegers reports the first offending index.
func quantitiesArePositiveIntegers(p Payload) error {
	for i, d := range p.Dishes {
		if _, ok := d.Quantity.PositiveInt(); !ok {
			return validation.NewInvalidQuantity(i, fmt.Sprintf(
				"Dish %d must have a quantity that is an integer greater than 0.", i))
		}
	}
	return nil
}

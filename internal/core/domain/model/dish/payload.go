package dish

import (
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/validation"
)

const (
	MsgNameRequired        = "Dish must include a name."
	MsgDescriptionRequired = "Dish must include a description."
	MsgPriceRequired       = "Dish must include a price."
	MsgPriceInvalid        = "Dish must have a price that is an integer greater than 0."
	MsgImageURLRequired    = "Dish must include an image_url."
)

// Payload is a dish as sent by a client in a create or update request.
// ID is optional and only checked on update.
type Payload struct {
	ID          string
	Name        string
	Description string
	Price       validation.Number
	ImageURL    string
}

// Fields converts a validated payload into dish attributes.
func (p Payload) Fields() Fields {
	price, _ := p.Price.PositiveInt()
	return Fields{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		ImageURL:    p.ImageURL,
	}
}

// UpdateRequest bundles what the update pipeline inspects.
// Existing is nil when no dish matches RouteID.
type UpdateRequest struct {
	RouteID  string
	Payload  Payload
	Existing *Dish
}

var fieldRules = validation.NewPipeline(
	func(p Payload) error { return validation.Required(p.Name, "name", MsgNameRequired) },
	func(p Payload) error {
		return validation.Required(p.Description, "description", MsgDescriptionRequired)
	},
	hasPrice,
	priceIsPositiveInteger,
	func(p Payload) error { return validation.Required(p.ImageURL, "image_url", MsgImageURLRequired) },
)

var updateRules = validation.NewPipeline(
	exists,
	idMatchesRoute,
	func(r UpdateRequest) error { return fieldRules.Run(r.Payload) },
)

// ValidateCreate runs the create pipeline.
func ValidateCreate(p Payload) error {
	return fieldRules.Run(p)
}

// ValidateUpdate runs the update pipeline: existence, id match, then the
// create field rules.
func ValidateUpdate(routeID string, p Payload, existing *Dish) error {
	return updateRules.Run(UpdateRequest{RouteID: routeID, Payload: p, Existing: existing})
}

// NotFound is the failure for a route id with no dish behind it.
func NotFound(id string) *validation.Failure {
	return validation.NewNotFound(id, fmt.Sprintf("Dish does not exist: %s.", id))
}

// NotFoundID is NotFound for an already parsed id.
func NotFoundID(id kernel.ID) *validation.Failure {
	return NotFound(id.String())
}

// hasPrice treats a literal 0 as a present but invalid price.
func hasPrice(p Payload) error {
	if p.Price.IsZero() {
		return validation.NewInvalidPrice(MsgPriceInvalid)
	}
	if !p.Price.IsSet() {
		return validation.NewMissingField("price", MsgPriceRequired)
	}
	return nil
}

func priceIsPositiveInteger(p Payload) error {
	if _, ok := p.Price.PositiveInt(); !ok {
		return validation.NewInvalidPrice(MsgPriceInvalid)
	}
	return nil
}

func exists(r UpdateRequest) error {
	if r.Existing == nil {
		return NotFound(r.RouteID)
	}
	return nil
}

func idMatchesRoute(r UpdateRequest) error {
	return validation.MatchingID(r.Payload.ID, r.RouteID, fmt.Sprintf(
		"Dish id does not match route id. Dish: %s, Route: %s", r.Payload.ID, r.RouteID))
}

package dish

import (
	"errors"
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Fields are the mutable attributes of a dish.
type Fields struct {
	Name        string
	Description string
	Price       int
	ImageURL    string
}

// Dish is the aggregate root for a menu item.
//
// Invariants:
//   - id is valid and never changes
//   - name, description and image URL are not empty
//   - price is greater than 0
type Dish struct {
	id          kernel.ID
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// NewDish creates a dish after checking every invariant. It is also used to
// rebuild dishes loaded from storage.
func NewDish(id kernel.ID, fields Fields) (*Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}

	d := &Dish{id: id, isConstructed: true}
	d.apply(fields)
	return d, nil
}

// Validate ensures the dish was built by NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Description() string {
	return d.description
}

// Price is in minor currency units.
func (d *Dish) Price() int {
	return d.price
}

func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Fields returns a copy of the mutable attributes.
func (d *Dish) Fields() Fields {
	return Fields{
		Name:        d.name,
		Description: d.description,
		Price:       d.price,
		ImageURL:    d.imageURL,
	}
}

// Update replaces the mutable attributes, leaving the id untouched.
// Nothing is written when fields break an invariant.
func (d *Dish) Update(fields Fields) error {
	if err := fields.validate(); err != nil {
		return err
	}
	d.apply(fields)
	return nil
}

// apply writes only the attributes that differ from the current values.
func (d *Dish) apply(f Fields) {
	if d.name != f.Name {
		d.name = f.Name
	}
	if d.description != f.Description {
		d.description = f.Description
	}
	if d.price != f.Price {
		d.price = f.Price
	}
	if d.imageURL != f.ImageURL {
		d.imageURL = f.ImageURL
	}
}

func (f Fields) validate() error {
	var errList []error
	if f.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if f.Description == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if f.Price <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is not greater than 0", f.Price)))
	}
	if f.ImageURL == "" {
		errList = append(errList, errs.NewValueIsRequiredError("image_url"))
	}
	return errors.Join(errList...)
}

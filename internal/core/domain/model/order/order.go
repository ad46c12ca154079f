package order

import (
	"errors"
	"slices"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned for an Order not created via NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Details are the attributes a client may replace on an order.
type Details struct {
	DeliverTo    string
	MobileNumber string
	Items        []LineItem
}

// Order is the aggregate root for a customer order.
//
// Order follows these invariants:
//   - id is valid and never changes
//   - deliverTo and mobileNumber are not empty
//   - there is at least one line item, each with a positive quantity
//   - status is one of the recognized statuses and never leaves delivered
type Order struct {
	id           kernel.ID
	deliverTo    string
	mobileNumber string
	status       Status
	items        []LineItem

	isConstructed bool
}

// NewOrder creates a pending order.
//
// Example:
//
//	item, _ := order.NewLineItem(order.DishSnapshot{}, 2)
//	o, err := order.NewOrder(kernel.NewID(), order.Details{
//	    DeliverTo:    "Rick Sanchez (C-132)",
//	    MobileNumber: "(202) 456-1111",
//	    Items:        []order.LineItem{item},
//	})
func NewOrder(id kernel.ID, details Details) (*Order, error) {
	return RestoreOrder(id, details, Pending)
}

// RestoreOrder rebuilds an order loaded from storage with its saved status.
func RestoreOrder(id kernel.ID, details Details, status Status) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(details.validate(), status.Validate()); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        status,
		isConstructed: true,
	}
	o.apply(details)
	return o, nil
}

// Validate ensures the order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) DeliverTo() string {
	return o.deliverTo
}

func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Details returns a copy of the replaceable attributes.
func (o *Order) Details() Details {
	return Details{
		DeliverTo:    o.deliverTo,
		MobileNumber: o.mobileNumber,
		Items:        o.Items(),
	}
}

// Update moves the order to target and replaces its details.
//
// The status transition is checked first: a delivered order rejects every
// update. Nothing is written when any check fails.
func (o *Order) Update(details Details, target string) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if err = details.validate(); err != nil {
		return err
	}

	o.status = next
	o.apply(details)
	return nil
}

// ValidateDelete reports whether the order may be removed.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

func (o *Order) apply(d Details) {
	if o.deliverTo != d.DeliverTo {
		o.deliverTo = d.DeliverTo
	}
	if o.mobileNumber != d.MobileNumber {
		o.mobileNumber = d.MobileNumber
	}
	o.items = slices.Clone(d.Items)
}

func (d Details) validate() error {
	var errList []error
	if d.DeliverTo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("deliverTo"))
	}
	if d.MobileNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("mobileNumber"))
	}
	if len(d.Items) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("dishes"))
	}
	for _, item := range d.Items {
		if item.quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidError("quantity"))
			break
		}
	}
	return errors.Join(errList...)
}

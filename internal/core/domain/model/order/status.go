package order

import (
	"grubdash/internal/core/domain/validation"
)

const (
	MsgStatusInvalid    = "Order must have a status of pending, preparing, out-for-delivery, delivered."
	MsgDeliveredIsFinal = "A delivered order cannot be changed."
	MsgDeleteNotPending = "An order cannot be deleted unless it is pending."
)

// Status is the delivery state of an order.
//
// Transitions on update:
//   - from delivered: none, every update is rejected
//   - from pending, preparing or out-for-delivery: to any recognized status
//
// Only pending orders can be deleted. The transition rule does not enforce
// forward-only ordering among the non-terminal states.
type Status string

const (
	Pending        Status = "pending"
	Preparing      Status = "preparing"
	OutForDelivery Status = "out-for-delivery"
	Delivered      Status = "delivered"
)

// Statuses lists the recognized statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus returns the status named by s, or an InvalidStatus failure.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate fails for anything outside the four recognized labels.
func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, OutForDelivery, Delivered:
		return nil
	default:
		return validation.NewInvalidStatus(MsgStatusInvalid)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateTransition checks a requested target without changing anything.
// The terminal check comes first, so a delivered order rejects even a
// request that repeats "delivered".
func (s Status) ValidateTransition(target string) error {
	_, err := s.TransitionTo(target)
	return err
}

// TransitionTo returns the status an update moves to.
//
// Returns:
//   - TerminalStateViolation if s is delivered
//   - InvalidStatus if target is not a recognized status
func (s Status) TransitionTo(target string) (Status, error) {
	if s.IsTerminal() {
		return "", validation.NewTerminalStateViolation(MsgDeliveredIsFinal)
	}
	return ParseStatus(target)
}

// ValidateDelete fails with DeleteNotAllowed unless s is pending.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return validation.NewDeleteNotAllowed(MsgDeleteNotPending)
	}
	return nil
}

package validation

import (
	"errors"
	"net/http"

	"grubdash/internal/pkg/errs"
)

// ErrStateViolation classifies failures caused by the current state of an
// entity rather than by the request payload.
var ErrStateViolation = errors.New("state violation")

// Kind identifies which rule rejected a request.
type Kind int

const (
	Unknown Kind = iota
	MissingField
	InvalidPrice
	InvalidQuantity
	IDMismatch
	NotFound
	InvalidStatus
	TerminalStateViolation
	DeleteNotAllowed
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:                "unknown",
		MissingField:           "missing_field",
		InvalidPrice:           "invalid_price",
		InvalidQuantity:        "invalid_quantity",
		IDMismatch:             "id_mismatch",
		NotFound:               "not_found",
		InvalidStatus:          "invalid_status",
		TerminalStateViolation: "terminal_state_violation",
		DeleteNotAllowed:       "delete_not_allowed",
	}
}

// String returns the snake_case label used in logs and metrics.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Failure is the single reason a pipeline rejected a request.
// Only the fields relevant to Kind are set.
type Failure struct {
	Kind    Kind
	Message string

	// Field is set for MissingField.
	Field string
	// Index is set for InvalidQuantity.
	Index int
	// PayloadID and RouteID are set for IDMismatch.
	PayloadID string
	RouteID   string
	// ID is set for NotFound.
	ID string
}

func NewMissingField(field, message string) *Failure {
	return &Failure{Kind: MissingField, Field: field, Message: message}
}

func NewInvalidPrice(message string) *Failure {
	return &Failure{Kind: InvalidPrice, Field: "price", Message: message}
}

func NewInvalidQuantity(index int, message string) *Failure {
	return &Failure{Kind: InvalidQuantity, Field: "quantity", Index: index, Message: message}
}

func NewIDMismatch(payloadID, routeID, message string) *Failure {
	return &Failure{Kind: IDMismatch, Field: "id", PayloadID: payloadID, RouteID: routeID, Message: message}
}

func NewNotFound(id, message string) *Failure {
	return &Failure{Kind: NotFound, ID: id, Message: message}
}

func NewInvalidStatus(message string) *Failure {
	return &Failure{Kind: InvalidStatus, Field: "status", Message: message}
}

func NewTerminalStateViolation(message string) *Failure {
	return &Failure{Kind: TerminalStateViolation, Field: "status", Message: message}
}

func NewDeleteNotAllowed(message string) *Failure {
	return &Failure{Kind: DeleteNotAllowed, Field: "status", Message: message}
}

func (f *Failure) Error() string {
	return f.Message
}

// Status returns the HTTP status code the failure is rendered with.
func (f *Failure) Status() int {
	if f.Kind == NotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// Unwrap exposes the taxonomy class so callers can use errors.Is with the
// errs sentinels or ErrStateViolation.
func (f *Failure) Unwrap() error {
	switch f.Kind {
	case NotFound:
		return errs.ErrObjectNotFound
	case MissingField:
		return errs.ErrValueIsRequired
	case TerminalStateViolation, DeleteNotAllowed:
		return ErrStateViolation
	default:
		return errs.ErrValueIsInvalid
	}
}

// AsFailure extracts the *Failure from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

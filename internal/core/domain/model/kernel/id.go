package kernel

import (
	"strings"

	"grubdash/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is the opaque identifier of a dish or an order.
//
// IDs minted by the service are random UUIDs, but clients address entities
// by whatever string appears in the route, so any non-blank string is a
// valid ID. Lookups with an unknown ID are answered with "not found".
//
// Example:
//
//	id := kernel.NewID()
//	same, _ := kernel.IDFromString(id.String())
//	fmt.Println(id.IsEqual(same)) // true
type ID struct {
	value string
}

// NewID mints a new random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps an identifier received from a client or from storage.
// Surrounding whitespace is not trimmed: "abc " and "abc" are different IDs.
func IDFromString(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate fails for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}

// UUIDGenerator mints IDs from random (version 4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// Next returns a fresh ID. It never returns the same value twice in practice.
func (UUIDGenerator) Next() ID {
	return NewID()
}

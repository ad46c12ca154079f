package validation

import "math"

// Number is a numeric request field as the client sent it. The zero value
// means the field was absent.
//
// Clients may send null, an empty string or false for a number; these count as
// absent. Any other non-numeric value is present but not a number.
type Number struct {
	present bool
	numeric bool
	value   float64
}

// NoNumber is an absent field.
func NoNumber() Number {
	return Number{}
}

// NumberOf is a field holding a JSON number.
func NumberOf(v float64) Number {
	return Number{present: true, numeric: true, value: v}
}

// NonNumeric is a field holding a value of another JSON type.
func NonNumeric() Number {
	return Number{present: true}
}

// IsSet reports whether the field counts as supplied. A literal 0 is supplied.
func (n Number) IsSet() bool {
	return n.present
}

// IsZero reports whether the field holds the number 0.
func (n Number) IsZero() bool {
	return n.numeric && n.value == 0
}

// PositiveInt returns the value when it is an integer greater than zero.
// There is no upper bound other than what an int can hold.
func (n Number) PositiveInt() (int, bool) {
	if !n.numeric || n.value <= 0 || n.value != math.Trunc(n.value) || n.value >= float64(math.MaxInt) {
		return 0, false
	}
	return int(n.value), true
}

// Float returns the raw numeric value and whether there is one.
func (n Number) Float() (float64, bool) {
	return n.value, n.numeric
}

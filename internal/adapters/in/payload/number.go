// Package payload decodes client JSON into the domain request payloads.
//
// Decoding keeps what validation needs to tell apart: a missing price is
// not the same failure as a price of "abc". Numbers follow these rules:
//   - absent, null, "" or false: not set
//   - a JSON number: its value
//   - anything else: set but not numeric
package payload

import (
	"bytes"
	"encoding/json"

	"grubdash/internal/core/domain/validation"
)

// Number decodes any JSON value into a validation.Number.
type Number struct {
	Value validation.Number
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Value = parseNumber(data)
	return nil
}

func parseNumber(data []byte) validation.Number {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "", "null", `""`, "false":
		return validation.NoNumber()
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return validation.NumberOf(f)
	}
	return validation.NonNumeric()
}

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("store unavailable")

	testCases := []struct {
		name     string
		err      error
		expected string
		sentinel error
	}{
		{
			name:     "object not found",
			err:      errs.NewObjectNotFoundError("dishId", "d-1"),
			expected: "object not found: d-1",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "object not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("orderId", "o-1", cause),
			expected: "object not found: param is: orderId, ID is: o-1 (cause: store unavailable)",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "value is invalid",
			err:      errs.NewValueIsInvalidError("price"),
			expected: "value is invalid: price",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "value is invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", cause),
			expected: "value is invalid: status (cause: store unavailable)",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "value is required",
			err:      errs.NewValueIsRequiredError("deliverTo"),
			expected: "value is required: deliverTo",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "value is required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("name", cause),
			expected: "value is required: name (cause: store unavailable)",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "value is out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99),
			expected: "value is invalid: 0 is quantity, min value is 1, max value is 99",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "value is out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("quantity", -1, 1, 99, cause),
			expected: "value is invalid: -1 is quantity, min value is 1, max value is 99 (cause: store unavailable)",
			sentinel: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestOutOfRangeMessageIsSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("mobileNumber", "555\n0100", 0, 10)

	assert.Contains(t, err.Error(), "555 0100")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("update dish: %w", errs.NewObjectNotFoundError("dishId", "d-1"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "dishId", notFound.ParamName)
	assert.Equal(t, "d-1", notFound.ID)
}

package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticket struct {
	title string
	seats int
}

func TestPipeline_Run(t *testing.T) {
	var calls []string
	rule := func(name string, fail bool) validation.Rule[ticket] {
		return func(ticket) error {
			calls = append(calls, name)
			if fail {
				return validation.NewMissingField(name, name+" is missing")
			}
			return nil
		}
	}

	t.Run("all rules pass", func(t *testing.T) {
		calls = nil
		p := validation.NewPipeline(rule("a", false), rule("b", false))

		require.NoError(t, p.Run(ticket{}))
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		calls = nil
		p := validation.NewPipeline(rule("a", false), rule("b", true), rule("c", true))

		err := p.Run(ticket{})

		f, ok := validation.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, "b", f.Field)
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("then appends without touching the base", func(t *testing.T) {
		calls = nil
		base := validation.NewPipeline(rule("a", false))
		extended := base.Then(rule("b", false))

		require.NoError(t, base.Run(ticket{}))
		assert.Equal(t, []string{"a"}, calls)

		calls = nil
		require.NoError(t, extended.Run(ticket{}))
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("empty pipeline passes", func(t *testing.T) {
		require.NoError(t, validation.NewPipeline[ticket]().Run(ticket{title: "x", seats: 1}))
	})
}

func TestFailure_Classification(t *testing.T) {
	testCases := []struct {
		name     string
		failure  *validation.Failure
		status   int
		sentinel error
		kind     string
	}{
		{"missing field", validation.NewMissingField("name", "m"), http.StatusBadRequest, errs.ErrValueIsRequired, "missing_field"},
		{"invalid price", validation.NewInvalidPrice("m"), http.StatusBadRequest, errs.ErrValueIsInvalid, "invalid_price"},
		{"invalid quantity", validation.NewInvalidQuantity(2, "m"), http.StatusBadRequest, errs.ErrValueIsInvalid, "invalid_quantity"},
		{"id mismatch", validation.NewIDMismatch("a", "b", "m"), http.StatusBadRequest, errs.ErrValueIsInvalid, "id_mismatch"},
		{"not found", validation.NewNotFound("x", "m"), http.StatusNotFound, errs.ErrObjectNotFound, "not_found"},
		{"invalid status", validation.NewInvalidStatus("m"), http.StatusBadRequest, errs.ErrValueIsInvalid, "invalid_status"},
		{"terminal state", validation.NewTerminalStateViolation("m"), http.StatusBadRequest, validation.ErrStateViolation, "terminal_state_violation"},
		{"delete not allowed", validation.NewDeleteNotAllowed("m"), http.StatusBadRequest, validation.ErrStateViolation, "delete_not_allowed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.failure.Status())
			require.ErrorIs(t, tc.failure, tc.sentinel)
			assert.Equal(t, tc.kind, tc.failure.Kind.String())
			assert.Equal(t, "m", tc.failure.Error())
		})
	}
}

func TestAsFailure(t *testing.T) {
	_, ok := validation.AsFailure(errors.New("boom"))
	assert.False(t, ok)

	f, ok := validation.AsFailure(errors.Join(errors.New("ctx"), validation.NewInvalidQuantity(1, "m")))
	require.True(t, ok)
	assert.Equal(t, 1, f.Index)
}

func TestRequired(t *testing.T) {
	require.NoError(t, validation.Required("Taco", "name", "m"))

	f, ok := validation.AsFailure(validation.Required("", "name", "Dish must include a name."))
	require.True(t, ok)
	assert.Equal(t, validation.MissingField, f.Kind)
	assert.Equal(t, "name", f.Field)
}

func TestMatchingID(t *testing.T) {
	require.NoError(t, validation.MatchingID("", "route", "m"))
	require.NoError(t, validation.MatchingID("route", "route", "m"))

	f, ok := validation.AsFailure(validation.MatchingID("body", "route", "m"))
	require.True(t, ok)
	assert.Equal(t, validation.IDMismatch, f.Kind)
	assert.Equal(t, "body", f.PayloadID)
	assert.Equal(t, "route", f.RouteID)
}

func TestNumber(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		n := validation.NoNumber()
		assert.False(t, n.IsSet())
		assert.False(t, n.IsZero())
		_, ok := n.PositiveInt()
		assert.False(t, ok)
	})

	t.Run("zero is set", func(t *testing.T) {
		n := validation.NumberOf(0)
		assert.True(t, n.IsSet())
		assert.True(t, n.IsZero())
	})

	t.Run("positive integers", func(t *testing.T) {
		for _, tt := range []struct {
			in   float64
			want int
		}{
			{in: 5, want: 5},
			{in: 1, want: 1},
			{in: 3000000000, want: 3000000000},
			{in: 1 << 53, want: 1 << 53},
		} {
			v, ok := validation.NumberOf(tt.in).PositiveInt()
			require.True(t, ok, "%v", tt.in)
			assert.Equal(t, tt.want, v)
		}
	})

	t.Run("rejects integers an int cannot hold", func(t *testing.T) {
		_, ok := validation.NumberOf(1 << 63).PositiveInt()
		assert.False(t, ok)
		_, ok = validation.NumberOf(1e300).PositiveInt()
		assert.False(t, ok)
	})

	t.Run("rejects fractions and negatives", func(t *testing.T) {
		for _, f := range []float64{-1, 0.5, 2.25, -3.5} {
			_, ok := validation.NumberOf(f).PositiveInt()
			assert.False(t, ok, "%v", f)
		}
	})

	t.Run("non numeric is set but never an integer", func(t *testing.T) {
		n := validation.NonNumeric()
		assert.True(t, n.IsSet())
		assert.False(t, n.IsZero())
		_, ok := n.PositiveInt()
		assert.False(t, ok)
	})
}

//go:build unit

package errs_test

import (
	"context"
	"errors"
	"testing"

	"lesson-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		matches error
		message string
	}{
		{
			name:    "validation",
			err:     errs.NewValidationError("no valid line items"),
			matches: errs.ErrValidation,
			message: "no valid line items",
		},
		{
			name:    "not found with ids",
			err:     errs.NewNotFoundError("lesson", "a", "b"),
			matches: errs.ErrNotFound,
			message: "lesson not found: a, b",
		},
		{
			name:    "capacity",
			err:     &errs.CapacityError{LessonID: "l1", Requested: 5, Available: 3},
			matches: errs.ErrCapacity,
			message: "insufficient space for lesson l1: requested 5, available 3",
		},
		{
			name:    "store",
			err:     errs.NewStoreError("get lessons", context.DeadlineExceeded),
			matches: errs.ErrStore,
			message: "store error: get lessons: context deadline exceeded",
		},
	}

	all := []error{errs.ErrValidation, errs.ErrNotFound, errs.ErrCapacity, errs.ErrStore}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			for _, sentinel := range all {
				assert.Equal(t, sentinel == tc.matches, errors.Is(tc.err, sentinel), "sentinel %v", sentinel)
			}
		})
	}

	t.Run("store error unwraps its cause", func(t *testing.T) {
		err := errs.Wrap(errs.NewStoreError("insert order", context.DeadlineExceeded), "place order")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.ErrorIs(t, err, errs.ErrStore)
	})

	t.Run("capacity error survives wrapping", func(t *testing.T) {
		err := errs.Wrap(&errs.CapacityError{LessonID: "l1", Requested: 2, Available: 1}, "reserve")

		var capErr *errs.CapacityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, 1, capErr.Available)
	})
}

func TestMark(t *testing.T) {
	marked := errs.Mark(errors.New("boom"), errs.ErrStore)
	assert.True(t, errs.Is(marked, errs.ErrStore))
	assert.False(t, errs.Is(errors.New("boom"), errs.ErrStore))
	assert.Equal(t, errs.ErrStore, errs.Mark(nil, errs.ErrStore))
	assert.NotEmpty(t, errs.ExtractStackLines(errs.New("x"), 3))
}

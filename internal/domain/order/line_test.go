//go:build unit

package order_test

import (
	"encoding/json"
	"math"
	"testing"

	"lesson-booking/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{name: "int", input: 2, want: 2, wantOK: true},
		{name: "int64", input: int64(7), want: 7, wantOK: true},
		{name: "whole float", input: 3.0, want: 3, wantOK: true},
		{name: "json number", input: json.Number("4"), want: 4, wantOK: true},
		{name: "numeric string", input: " 5 ", want: 5, wantOK: true},
		{name: "float string", input: "6.0", want: 6, wantOK: true},
		{name: "max int32", input: math.MaxInt32, want: math.MaxInt32, wantOK: true},
		{name: "zero", input: 0},
		{name: "negative", input: -1},
		{name: "fraction", input: 2.5},
		{name: "fraction json number", input: json.Number("1.5")},
		{name: "NaN", input: math.NaN()},
		{name: "infinite", input: math.Inf(1)},
		{name: "huge negative float", input: -1e300},
		{name: "above int32", input: int64(math.MaxInt32) + 1},
		{name: "non-numeric string", input: "abc"},
		{name: "empty string", input: ""},
		{name: "bool", input: true},
		{name: "nil", input: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := order.ParseQuantity(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidLines(t *testing.T) {
	raw := []order.RawLine{
		{LessonID: "a", Quantity: 2},
		{LessonID: "", Quantity: 1},
		{LessonID: "  ", Quantity: 1},
		{LessonID: "b", Quantity: 0},
		{LessonID: "b", Quantity: "abc"},
		{LessonID: " c ", Quantity: "3"},
		{LessonID: "a", Quantity: 1.0},
	}

	want := []order.Line{
		{LessonID: "a", Quantity: 2},
		{LessonID: "c", Quantity: 3},
		{LessonID: "a", Quantity: 1},
	}

	if diff := cmp.Diff(want, order.ValidLines(raw)); diff != "" {
		t.Errorf("ValidLines mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("duplicate lines are summed", func(t *testing.T) {
		lines := []order.Line{
			{LessonID: "x", Quantity: 3},
			{LessonID: "y", Quantity: 1},
			{LessonID: "x", Quantity: 3},
		}

		got := order.Aggregate(lines)

		if diff := cmp.Diff(order.Request{"x": 6, "y": 1}, got); diff != "" {
			t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"x", "y"}, got.LessonIDs())
	})

	t.Run("empty input gives empty request", func(t *testing.T) {
		got := order.Aggregate(nil)
		assert.Empty(t, got)
		assert.Empty(t, got.LessonIDs())
	})

	t.Run("ids are sorted ascending", func(t *testing.T) {
		got := order.Aggregate([]order.Line{
			{LessonID: "m", Quantity: 1},
			{LessonID: "b", Quantity: 1},
			{LessonID: "z", Quantity: 1},
		})
		assert.Equal(t, []string{"b", "m", "z"}, got.LessonIDs())
	})
}

//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"lesson-booking/internal/domain/order"
	"lesson-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewOrderBuilder().WithLine("x", 3).WithLine("x", 2)
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEmpty(t, actual.ID())
		assert.Equal(t, "Ada Lovelace", actual.CustomerName())
		assert.Equal(t, "07700900123", actual.CustomerPhone())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
		assert.Len(t, actual.Lines(), 2, "lines are kept as submitted")
		assert.Equal(t, order.Request{"x": 5}, actual.Request())
	})

	t.Run("lines cannot be mutated through the accessor", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithLine("x", 1).BuildDomain()
		require.NoError(t, err)

		lines := actual.Lines()
		lines[0].Quantity = 99
		assert.Equal(t, 1, actual.Lines()[0].Quantity)
	})

	testCases := []struct {
		name   string
		mutate func(*builder.OrderBuilder)
		errIs  error
	}{
		{name: "blank name", mutate: func(b *builder.OrderBuilder) { b.CustomerName = " " }, errIs: order.ErrEmptyCustomerName},
		{name: "blank phone", mutate: func(b *builder.OrderBuilder) { b.CustomerPhone = "" }, errIs: order.ErrEmptyCustomerPhone},
		{
			name:   "name too long",
			mutate: func(b *builder.OrderBuilder) { b.CustomerName = strings.Repeat("n", order.MaxCustomerFieldLength+1) },
			errIs:  order.ErrCustomerTooLong,
		},
		{name: "no lines", mutate: func(b *builder.OrderBuilder) { b.Lines = nil }, errIs: order.ErrNoValidLines},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOrderBuilder().WithLine("x", 1).With(tc.mutate)
			_, err := order.NewOrder(b.CustomerName, b.CustomerPhone, b.Lines, time.Now())
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

//go:build unit || e2e

package builder

import (
	"time"

	"lesson-booking/internal/domain/order"
	reqdto "lesson-booking/internal/handler/dto/request"
	"lesson-booking/internal/usecase/commands"
	"lesson-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Lines         []order.Line
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.NewString(),
		CustomerName:  "Ada Lovelace",
		CustomerPhone: "07700900123",
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithLine(lessonID string, quantity int) *OrderBuilder {
	b.Lines = append(b.Lines, order.Line{LessonID: lessonID, Quantity: quantity})
	return b
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.NewOrder(b.CustomerName, b.CustomerPhone, b.Lines, b.CreatedAt)
}

func (b *OrderBuilder) BuildParams() commands.PlaceOrderParams {
	raw := make([]order.RawLine, len(b.Lines))
	for i, l := range b.Lines {
		raw[i] = order.RawLine{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return commands.PlaceOrderParams{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Lines:         raw,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	lines := make([]queries.OrderLineView, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = queries.OrderLineView{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return &queries.OrderView{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Lines:         lines,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.PlaceOrderRequest {
	lines := make([]reqdto.OrderLineRequest, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = reqdto.OrderLineRequest{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return reqdto.PlaceOrderRequest{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Lines:         lines,
	}
}

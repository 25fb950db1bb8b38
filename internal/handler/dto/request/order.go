package request

import (
	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/usecase/commands"
)

// OrderLineRequest keeps quantity untyped so malformed lines can be dropped instead of
// failing the whole request.
type OrderLineRequest struct {
	LessonID string `json:"lessonId"`
	Quantity any    `json:"quantity" swaggertype:"integer"`
}

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Lines         []OrderLineRequest `json:"lines"`
}

func (r *PlaceOrderRequest) ToParams() commands.PlaceOrderParams {
	lines := make([]order.RawLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = order.RawLine{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return commands.PlaceOrderParams{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Lines:         lines,
	}
}

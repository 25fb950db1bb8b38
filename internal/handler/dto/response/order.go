package response

import (
	"time"

	"lesson-booking/internal/usecase/queries"
)

type OrderLineResponse struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	Lines         []OrderLineResponse `json:"lines"`
	CreatedAt     string              `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return &OrderResponse{
		ID:            v.ID,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		Lines:         lines,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

type CapacityDetail struct {
	LessonID  string `json:"lessonId"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

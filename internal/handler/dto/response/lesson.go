package response

import (
	"lesson-booking/internal/usecase/queries"
)

type LessonResponse struct {
	ID       string  `json:"id"`
	Topic    string  `json:"topic"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Space    int     `json:"space"`
}

func FromLessonView(v *queries.LessonView) *LessonResponse {
	return &LessonResponse{
		ID:       v.ID,
		Topic:    v.Topic,
		Location: v.Location,
		Price:    v.Price,
		Space:    v.Space,
	}
}

func FromLessonList(views []*queries.LessonView) []*LessonResponse {
	res := make([]*LessonResponse, len(views))
	for i, v := range views {
		res[i] = FromLessonView(v)
	}
	return res
}

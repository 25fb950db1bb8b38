package request

import (
	"lesson-booking/internal/usecase/commands"
)

type CreateLessonRequest struct {
	Topic    string   `json:"topic" binding:"required,max=255"`
	Location string   `json:"location" binding:"required,max=255"`
	Price    *float64 `json:"price" binding:"required,gte=0,lte=99999999.99"`
	Space    *int     `json:"space" binding:"required,gte=0"`
}

func (r *CreateLessonRequest) ToParams() commands.CreateLessonParams {
	return commands.CreateLessonParams{
		Topic:    r.Topic,
		Location: r.Location,
		Price:    *r.Price,
		Space:    *r.Space,
	}
}

type SetSpaceRequest struct {
	Space *int `json:"space" binding:"required,gte=0"`
}

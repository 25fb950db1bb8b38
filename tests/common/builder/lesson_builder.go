//go:build unit || e2e

package builder

import (
	"time"

	"lesson-booking/internal/domain/lesson"
	reqdto "lesson-booking/internal/handler/dto/request"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LessonBuilder struct {
	ID        string
	Topic     string
	Location  string
	Price     float64
	Space     int
	CreatedAt time.Time
}

func NewLessonBuilder() *LessonBuilder {
	return &LessonBuilder{
		ID:        uuid.NewString(),
		Topic:     "Maths",
		Location:  "Hendon",
		Price:     100,
		Space:     5,
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LessonBuilder) With(mutate func(*LessonBuilder)) *LessonBuilder {
	mutate(b)
	return b
}

func (b *LessonBuilder) BuildDomain() (*lesson.Lesson, error) {
	return lesson.NewLesson(b.ID, b.Topic, b.Location, b.Price, b.Space, b.CreatedAt)
}

// MustBuildDomain panics on invalid builder state; tests only.
func (b *LessonBuilder) MustBuildDomain() *lesson.Lesson {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}

func (b *LessonBuilder) BuildInfra() pgq.Lesson {
	return pgq.Lesson{
		ID:        b.ID,
		Topic:     b.Topic,
		Location:  b.Location,
		Price:     pgconv.Float64ToNumeric(b.Price),
		Space:     int32(b.Space), // #nosec G115 -- test data
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *LessonBuilder) BuildView() *queries.LessonView {
	return &queries.LessonView{
		ID:       b.ID,
		Topic:    b.Topic,
		Location: b.Location,
		Price:    b.Price,
		Space:    b.Space,
	}
}

func (b *LessonBuilder) BuildSnapshot() shared.LessonSnapshot {
	return shared.LessonSnapshot{
		ID:       b.ID,
		Topic:    b.Topic,
		Location: b.Location,
		Price:    b.Price,
		Space:    b.Space,
	}
}

func (b *LessonBuilder) BuildCreateRequestDTO() reqdto.CreateLessonRequest {
	price := b.Price
	space := b.Space
	return reqdto.CreateLessonRequest{
		Topic:    b.Topic,
		Location: b.Location,
		Price:    &price,
		Space:    &space,
	}
}

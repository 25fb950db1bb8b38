package repository

import (
	"context"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/shared"
)

type LessonWriteQueries interface {
	InsertLesson(ctx context.Context, db pgq.DBTX, arg pgq.InsertLessonParams) error
	ReserveLessonSpace(ctx context.Context, db pgq.DBTX, arg pgq.SpaceDeltaParams) (int64, error)
	GetLessonSpace(ctx context.Context, db pgq.DBTX, id string) (int32, error)
	SetLessonSpace(ctx context.Context, db pgq.DBTX, arg pgq.SetLessonSpaceParams) (pgq.Lesson, error)
}

// LessonRepository is bound to one DBTX, normally the open transaction.
type LessonRepository struct {
	queries LessonWriteQueries
	db      pgq.DBTX
}

func NewLessonRepository(queries LessonWriteQueries, db pgq.DBTX) *LessonRepository {
	return &LessonRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LessonRepository) Create(ctx context.Context, l *lesson.Lesson) error {
	params := pgq.InsertLessonParams{
		ID:        l.ID(),
		Topic:     l.Topic(),
		Location:  l.Location(),
		Price:     pgconv.Float64ToNumeric(l.Price()),
		Space:     int32(l.Space()), // #nosec G115 -- bounded by lesson.MaxSpace
		CreatedAt: l.CreatedAt(),
	}
	if err := r.queries.InsertLesson(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create lesson", err)
	}
	return nil
}

func (r *LessonRepository) ReserveSpace(ctx context.Context, lessonID string, qty int) (bool, error) {
	affected, err := r.queries.ReserveLessonSpace(ctx, r.db, pgq.SpaceDeltaParams{
		ID:       lessonID,
		Quantity: int32(qty), // #nosec G115 -- quantities are parsed into int32 range
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve lesson space", err)
	}
	return affected == 1, nil
}

func (r *LessonRepository) CurrentSpace(ctx context.Context, lessonID string) (int, error) {
	space, err := r.queries.GetLessonSpace(ctx, r.db, lessonID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get lesson space", err)
	}
	return int(space), nil
}

func (r *LessonRepository) SetSpace(ctx context.Context, lessonID string, space int) (*shared.LessonSnapshot, error) {
	row, err := r.queries.SetLessonSpace(ctx, r.db, pgq.SetLessonSpaceParams{
		ID:    lessonID,
		Space: int32(space), // #nosec G115 -- bounded by lesson.MaxSpace
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to set lesson space", err)
	}
	return toLessonSnapshot(row)
}

func toLessonSnapshot(row pgq.Lesson) (*shared.LessonSnapshot, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lesson price", err)
	}
	return &shared.LessonSnapshot{
		ID:       row.ID,
		Topic:    row.Topic,
		Location: row.Location,
		Price:    price,
		Space:    int(row.Space),
	}, nil
}

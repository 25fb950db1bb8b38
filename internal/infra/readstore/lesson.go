package readstore

import (
	"context"
	"strconv"
	"strings"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"
)

type LessonReadQueries interface {
	GetLessonByID(ctx context.Context, db pgq.DBTX, id string) (pgq.Lesson, error)
	GetLessonsByIDs(ctx context.Context, db pgq.DBTX, ids []string) ([]pgq.Lesson, error)
	ListLessons(ctx context.Context, db pgq.DBTX) ([]pgq.Lesson, error)
	SearchLessons(ctx context.Context, db pgq.DBTX, arg pgq.SearchLessonsParams) ([]pgq.Lesson, error)
}

type LessonReadStore struct {
	queries LessonReadQueries
	db      pgq.DBTX
}

func NewLessonReadStore(queries LessonReadQueries, db pgq.DBTX) *LessonReadStore {
	return &LessonReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LessonReadStore) List(ctx context.Context) ([]*queries.LessonView, error) {
	rows, err := r.queries.ListLessons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lessons", err)
	}
	return toLessonViews(rows)
}

func (r *LessonReadStore) FindByID(ctx context.Context, id string) (*queries.LessonView, error) {
	row, err := r.queries.GetLessonByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get lesson by id", err)
	}
	return toLessonView(row)
}

func (r *LessonReadStore) Search(ctx context.Context, criteria queries.SearchCriteria) ([]*queries.LessonView, error) {
	params := pgq.SearchLessonsParams{
		Pattern: "%" + escapeLike(criteria.Text) + "%",
	}
	if criteria.Number != nil {
		if err := params.Number.Scan(formatNumber(*criteria.Number)); err != nil {
			return nil, infra.WrapRepoErr("invalid numeric search term", err)
		}
	}

	rows, err := r.queries.SearchLessons(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search lessons", err)
	}
	return toLessonViews(rows)
}

// LessonsByIDs serves the write side's batched validation read.
func (r *LessonReadStore) LessonsByIDs(ctx context.Context, ids []string) ([]shared.LessonSnapshot, error) {
	rows, err := r.queries.GetLessonsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get lessons by ids", err)
	}

	snapshots := make([]shared.LessonSnapshot, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid lesson price", err)
		}
		snapshots = append(snapshots, shared.LessonSnapshot{
			ID:       row.ID,
			Topic:    row.Topic,
			Location: row.Location,
			Price:    price,
			Space:    int(row.Space),
		})
	}
	return snapshots, nil
}

func toLessonViews(rows []pgq.Lesson) ([]*queries.LessonView, error) {
	views := make([]*queries.LessonView, 0, len(rows))
	for _, row := range rows {
		v, err := toLessonView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toLessonView(row pgq.Lesson) (*queries.LessonView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lesson price", err)
	}
	return &queries.LessonView{
		ID:       row.ID,
		Topic:    row.Topic,
		Location: row.Location,
		Price:    price,
		Space:    int(row.Space),
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package queries

import (
	"context"
	"math"
	"strconv"
	"strings"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/errs"
)

type LessonView struct {
	ID       string  `json:"id"`
	Topic    string  `json:"topic"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Space    int     `json:"space"`
}

// SearchCriteria is a parsed search query. Number is set when the text parses as one;
// a lesson matches on text OR number.
type SearchCriteria struct {
	Text   string
	Number *float64
}

type LessonReadStore interface {
	List(ctx context.Context) ([]*LessonView, error)
	FindByID(ctx context.Context, id string) (*LessonView, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*LessonView, error)
}

type LessonQueries interface {
	List(ctx context.Context) ([]*LessonView, error)
	Get(ctx context.Context, id string) (*LessonView, error)
	Search(ctx context.Context, query string) ([]*LessonView, error)
}

type lessonQueriesImpl struct {
	store LessonReadStore
}

func NewLessonQueries(store LessonReadStore) LessonQueries {
	return &lessonQueriesImpl{store: store}
}

func (q *lessonQueriesImpl) List(ctx context.Context) ([]*LessonView, error) {
	lessons, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list lessons", err)
	}
	return nonNil(lessons), nil
}

func (q *lessonQueriesImpl) Get(ctx context.Context, id string) (*LessonView, error) {
	l, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFoundError("lesson", id)
		}
		return nil, errs.NewStoreError("get lesson", err)
	}
	return l, nil
}

func (q *lessonQueriesImpl) Search(ctx context.Context, query string) ([]*LessonView, error) {
	criteria := ParseSearch(query)
	if criteria.Text == "" {
		return q.List(ctx)
	}

	lessons, err := q.store.Search(ctx, criteria)
	if err != nil {
		return nil, errs.NewStoreError("search lessons", err)
	}
	return nonNil(lessons), nil
}

func ParseSearch(query string) SearchCriteria {
	text := strings.TrimSpace(query)
	criteria := SearchCriteria{Text: text}
	if text == "" {
		return criteria
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		criteria.Number = &n
	}
	return criteria
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

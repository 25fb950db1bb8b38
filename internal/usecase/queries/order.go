package queries

import (
	"context"
	"time"

	"lesson-booking/internal/pkg/errs"
)

type OrderLineView struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

type OrderView struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Lines         []OrderLineView `json:"lines"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderReadStore interface {
	// ListNewestFirst orders by creation time descending, ties broken by id descending.
	ListNewestFirst(ctx context.Context) ([]*OrderView, error)
}

type OrderQueries interface {
	List(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.store.ListNewestFirst(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list orders", err)
	}
	return nonNil(orders), nil
}

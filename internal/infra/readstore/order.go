package readstore

import (
	"context"
	"encoding/json"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/queries"
)

type OrderReadQueries interface {
	ListOrdersNewestFirst(ctx context.Context, db pgq.DBTX) ([]pgq.OrderWithLines, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgq.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgq.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) ListNewestFirst(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersNewestFirst(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		lines := []queries.OrderLineView{}
		if len(row.Lines) > 0 {
			if err := json.Unmarshal(row.Lines, &lines); err != nil {
				return nil, infra.WrapRepoErr("failed to decode order lines", err)
			}
		}
		views = append(views, &queries.OrderView{
			ID:            row.ID,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			Lines:         lines,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

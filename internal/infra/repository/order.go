package repository

import (
	"context"

	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db pgq.DBTX, arg pgq.InsertOrderParams) (string, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      pgq.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db pgq.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) (string, error) {
	lines := o.Lines()
	params := pgq.InsertOrderParams{
		ID:            o.ID(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		CreatedAt:     o.CreatedAt(),
		LessonIDs:     make([]string, len(lines)),
		Quantities:    make([]int32, len(lines)),
	}
	for i, l := range lines {
		params.LessonIDs[i] = l.LessonID
		params.Quantities[i] = int32(l.Quantity) // #nosec G115 -- quantities are parsed into int32 range
	}

	id, err := r.queries.InsertOrder(ctx, r.db, params)
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert order", err)
	}
	return id, nil
}

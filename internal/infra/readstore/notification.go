package readstore

import (
	"context"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/shared"
)

type NotificationReadQueries interface {
	ClaimPendingNotificationJobs(ctx context.Context, db pgq.DBTX, limit int32) ([]pgq.NotificationJob, error)
}

// NotificationReadStore must be bound to a transaction: claimed rows stay locked until it ends.
type NotificationReadStore struct {
	queries NotificationReadQueries
	db      pgq.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db pgq.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ClaimPending(ctx context.Context, limit int32) ([]shared.NotificationJob, error) {
	rows, err := s.queries.ClaimPendingNotificationJobs(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: int(row.Attempts),
		}
	}

	return jobs, nil
}

package uow

import (
	"context"

	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/infra/readstore"
	"lesson-booking/internal/infra/repository"
	"lesson-booking/internal/usecase/shared"
)

const outboxMaxRetries = 3

// PostgresOutbox hands queued notification jobs to a handler and records the outcome
// in the same transaction that claimed them.
type PostgresOutbox struct {
	uow *PostgresUoW
}

func NewPostgresOutbox(uow *PostgresUoW) *PostgresOutbox {
	return &PostgresOutbox{uow: uow}
}

func (o *PostgresOutbox) ClaimPending(ctx context.Context, limit int, handle func(ctx context.Context, job shared.NotificationJob) error) (int, error) {
	var handled int

	err := o.uow.WithinRetry(ctx, outboxMaxRetries, func(ctx context.Context, tx pgq.DBTX) error {
		handled = 0
		jobs, err := readstore.NewNotificationReadStore(o.uow.q, tx).ClaimPending(ctx, int32(limit)) // #nosec G115 -- small batch size
		if err != nil {
			return err
		}

		repo := repository.NewNotificationRepository(o.uow.q, tx)
		for _, job := range jobs {
			status, lastError := shared.NotificationStatusSent, (*string)(nil)
			if herr := handle(ctx, job); herr != nil {
				msg := herr.Error()
				lastError = &msg
				status = shared.NotificationStatusQueued
				if job.Attempts+1 >= shared.NotificationMaxAttempts {
					status = shared.NotificationStatusFailed
				}
			}
			if err := repo.UpdateJobStatus(ctx, job.ID, status, lastError); err != nil {
				return err
			}
			handled++
		}
		return nil
	})

	return handled, err
}

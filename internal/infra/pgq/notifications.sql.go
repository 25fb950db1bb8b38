package pgq

import (
	"context"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

// SKIP LOCKED lets several relays poll the same table without handing out a job twice.
const claimPendingNotificationJobs = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= NOW()
ORDER BY run_at
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimPendingNotificationJobs(ctx context.Context, db DBTX, limit int32) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimPendingNotificationJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts,
			&j.Status, &j.LastError, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, last_error = $3, attempts = attempts + 1, updated_at = NOW()
WHERE id = $1`

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

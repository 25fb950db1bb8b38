package memstore

import (
	"context"
	"sort"

	"lesson-booking/internal/usecase/shared"
)

func (s *Store) ClaimPending(ctx context.Context, limit int, handle func(ctx context.Context, job shared.NotificationJob) error) (int, error) {
	if err := checkCtx(ctx, "failed to claim pending notification jobs"); err != nil {
		return 0, err
	}

	s.mu.Lock()
	var claimed []*jobRecord
	for _, j := range s.jobs {
		if j.status == shared.NotificationStatusQueued {
			claimed = append(claimed, j)
		}
	}
	sort.SliceStable(claimed, func(i, k int) bool { return claimed[i].runAt.Before(claimed[k].runAt) })
	if len(claimed) > limit {
		claimed = claimed[:limit]
	}
	jobs := make([]shared.NotificationJob, len(claimed))
	for i, j := range claimed {
		// held until the handler reports back
		j.status = statusClaimed
		jobs[i] = shared.NotificationJob{
			ID:       j.id,
			Kind:     j.kind,
			Topic:    j.topic,
			Payload:  append([]byte(nil), j.payload...),
			RunAt:    j.runAt,
			Attempts: j.attempts,
		}
	}
	s.mu.Unlock()

	for i, job := range jobs {
		herr := handle(ctx, job)

		s.mu.Lock()
		rec := claimed[i]
		rec.attempts++
		switch {
		case herr == nil:
			rec.status = shared.NotificationStatusSent
			rec.lastError = nil
		case rec.attempts >= shared.NotificationMaxAttempts:
			msg := herr.Error()
			rec.status, rec.lastError = shared.NotificationStatusFailed, &msg
		default:
			msg := herr.Error()
			rec.status, rec.lastError = shared.NotificationStatusQueued, &msg
		}
		s.mu.Unlock()
	}

	return len(jobs), nil
}

const statusClaimed = "claimed"

// JobStatuses reports the status of every notification job, oldest first.
func (s *Store) JobStatuses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.status
	}
	return out
}

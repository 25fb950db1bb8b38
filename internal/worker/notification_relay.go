package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"lesson-booking/internal/pkg/config"
	"lesson-booking/internal/pkg/errs"
	"lesson-booking/internal/usecase/shared"
)

var errUnknownTopic = errs.New("unknown notification topic")

type orderPlaced struct {
	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`
	Lines        []struct {
		LessonID string `json:"lessonId"`
		Quantity int    `json:"quantity"`
	} `json:"lines"`
}

// NotificationRelay periodically drains queued notification jobs. Delivery is a
// structured log line per job.
type NotificationRelay struct {
	outbox    shared.NotificationOutbox
	interval  time.Duration
	batchSize int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationRelay(outbox shared.NotificationOutbox, cfg config.Config) *NotificationRelay {
	return &NotificationRelay{
		outbox:    outbox,
		interval:  cfg.Relay.Interval,
		batchSize: cfg.Relay.BatchSize,
	}
}

func (r *NotificationRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
	slog.Info("notification relay started", "interval", r.interval.String(), "batch_size", r.batchSize)
}

// Stop cancels the loop and waits for the in-flight batch, bounded by ctx.
func (r *NotificationRelay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("notification relay stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *NotificationRelay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("notification relay batch failed", "error", err.Error())
			}
		}
	}
}

// RunOnce processes a single batch and reports how many jobs were handled.
func (r *NotificationRelay) RunOnce(ctx context.Context) (int, error) {
	n, err := r.outbox.ClaimPending(ctx, r.batchSize, deliver)
	if err != nil {
		return n, errs.Wrap(err, "claim pending notifications")
	}
	if n > 0 {
		slog.Debug("notification batch processed", "jobs", n)
	}
	return n, nil
}

func deliver(_ context.Context, job shared.NotificationJob) error {
	switch job.Topic {
	case shared.NotificationTopicPlaced:
		var p orderPlaced
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return errs.Wrap(err, "decode order_placed payload")
		}
		seats := 0
		for _, l := range p.Lines {
			seats += l.Quantity
		}
		slog.Info("order confirmation sent",
			"job_id", job.ID.String(),
			"order_id", p.OrderID,
			"customer", p.CustomerName,
			"seats", seats,
			"attempt", job.Attempts+1)
		return nil
	default:
		return errs.Wrapf(errUnknownTopic, "topic %q", job.Topic)
	}
}

package memstore

import (
	"context"
	"log/slog"
	"time"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// compensation undoes one applied step.
type compensation struct {
	name string
	undo func()
}

// saga records the steps applied during one Within call. Effects that other
// readers could act on are held in pending until the call commits.
type saga struct {
	applied []compensation
	pending []func()
}

func (s *saga) afterCommit(publish func()) {
	s.pending = append(s.pending, publish)
}

func (s *saga) commit() {
	for _, publish := range s.pending {
		publish()
	}
	s.pending = nil
}

func (s *saga) record(name string, undo func()) {
	s.applied = append(s.applied, compensation{name: name, undo: undo})
}

// rollback runs compensations last-in first-out.
func (s *saga) rollback() {
	for i := len(s.applied) - 1; i >= 0; i-- {
		c := s.applied[i]
		slog.Debug("compensating step", "step", c.name)
		c.undo()
	}
	s.applied = nil
	s.pending = nil
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := checkCtx(ctx, "unit of work not started"); err != nil {
		return err
	}

	sg := &saga{}
	if err := fn(ctx, &memTx{store: s, saga: sg}); err != nil {
		if len(sg.applied) > 0 {
			slog.Warn("unit of work failed, compensating", "steps", len(sg.applied), "error", err.Error())
		}
		sg.rollback()
		return err
	}
	// A deadline that expired during fn still voids the whole batch.
	if err := checkCtx(ctx, "unit of work timed out"); err != nil {
		sg.rollback()
		return err
	}
	sg.commit()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

type memTx struct {
	store *Store
	saga  *saga
}

func (t *memTx) Lessons() shared.LessonRepository             { return &lessonRepo{tx: t} }
func (t *memTx) Orders() shared.OrderRepository               { return &orderRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{tx: t} }

type lessonRepo struct {
	tx *memTx
}

func (r *lessonRepo) Create(ctx context.Context, l *lesson.Lesson) error {
	if err := checkCtx(ctx, "failed to create lesson"); err != nil {
		return err
	}
	s := r.tx.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.lessons[l.ID()]; exists {
		return infra.WrapRepoErr("lesson already exists", nil, infra.KindDuplicateKey)
	}
	s.lessons[l.ID()] = &lessonRecord{
		id:        l.ID(),
		topic:     l.Topic(),
		location:  l.Location(),
		price:     l.Price(),
		space:     l.Space(),
		createdAt: l.CreatedAt(),
	}

	id := l.ID()
	r.tx.saga.record("create lesson", func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.lessons, id)
	})
	return nil
}

func (r *lessonRepo) ReserveSpace(ctx context.Context, lessonID string, qty int) (bool, error) {
	if err := checkCtx(ctx, "failed to reserve lesson space"); err != nil {
		return false, err
	}
	s := r.tx.store

	s.mu.Lock()
	rec, ok := s.lessons[lessonID]
	if !ok || rec.space < qty {
		s.mu.Unlock()
		return false, nil
	}
	rec.space -= qty
	s.mu.Unlock()

	r.tx.saga.record("reserve "+lessonID, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if rec, ok := s.lessons[lessonID]; ok {
			rec.space += qty
		}
	})
	return true, nil
}

func (r *lessonRepo) CurrentSpace(ctx context.Context, lessonID string) (int, error) {
	if err := checkCtx(ctx, "failed to get lesson space"); err != nil {
		return 0, err
	}
	s := r.tx.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.lessons[lessonID]
	if !ok {
		return 0, notFound("lesson not found")
	}
	return rec.space, nil
}

func (r *lessonRepo) SetSpace(ctx context.Context, lessonID string, space int) (*shared.LessonSnapshot, error) {
	if err := checkCtx(ctx, "failed to set lesson space"); err != nil {
		return nil, err
	}
	s := r.tx.store

	s.mu.Lock()
	rec, ok := s.lessons[lessonID]
	if !ok {
		s.mu.Unlock()
		return nil, notFound("lesson not found")
	}
	previous := rec.space
	rec.space = space
	snapshot := rec.snapshot()
	s.mu.Unlock()

	r.tx.saga.record("set space "+lessonID, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if rec, ok := s.lessons[lessonID]; ok {
			rec.space = previous
		}
	})
	return &snapshot, nil
}

type orderRepo struct {
	tx *memTx
}

func (r *orderRepo) Insert(ctx context.Context, o *order.Order) (string, error) {
	if err := checkCtx(ctx, "failed to insert order"); err != nil {
		return "", err
	}
	s := r.tx.store

	lines := o.Lines()
	records := make([]orderLineRecord, len(lines))
	for i, l := range lines {
		records[i] = orderLineRecord{lessonID: l.LessonID, quantity: l.Quantity}
	}

	s.mu.Lock()
	if _, exists := s.orders[o.ID()]; exists {
		s.mu.Unlock()
		return "", infra.WrapRepoErr("order already exists", nil, infra.KindDuplicateKey)
	}
	s.orders[o.ID()] = &orderRecord{
		id:            o.ID(),
		customerName:  o.CustomerName(),
		customerPhone: o.CustomerPhone(),
		lines:         records,
		createdAt:     o.CreatedAt(),
	}
	s.mu.Unlock()

	id := o.ID()
	r.tx.saga.record("insert order", func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.orders, id)
	})
	return id, nil
}

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if err := checkCtx(ctx, "failed to create notification job"); err != nil {
		return err
	}
	s := r.tx.store

	job := &jobRecord{
		id:      uuid.New(),
		kind:    kind,
		topic:   topic,
		payload: append([]byte(nil), payload...),
		runAt:   runAt,
		status:  shared.NotificationStatusQueued,
	}

	// not claimable until Within commits
	r.tx.saga.afterCommit(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.jobs = append(s.jobs, job)
	})
	return nil
}

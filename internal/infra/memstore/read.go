package memstore

import (
	"context"
	"sort"
	"strings"

	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"
)

func (r *lessonRecord) snapshot() shared.LessonSnapshot {
	return shared.LessonSnapshot{
		ID:       r.id,
		Topic:    r.topic,
		Location: r.location,
		Price:    r.price,
		Space:    r.space,
	}
}

func (r *lessonRecord) view() *queries.LessonView {
	return &queries.LessonView{
		ID:       r.id,
		Topic:    r.topic,
		Location: r.location,
		Price:    r.price,
		Space:    r.space,
	}
}

func (r *lessonRecord) matches(criteria queries.SearchCriteria) bool {
	text := strings.ToLower(criteria.Text)
	if strings.Contains(strings.ToLower(r.topic), text) || strings.Contains(strings.ToLower(r.location), text) {
		return true
	}
	if criteria.Number != nil {
		n := *criteria.Number
		return r.price == n || float64(r.space) == n
	}
	return false
}

func (s *Store) List(ctx context.Context) ([]*queries.LessonView, error) {
	return s.collect(ctx, func(*lessonRecord) bool { return true })
}

func (s *Store) Search(ctx context.Context, criteria queries.SearchCriteria) ([]*queries.LessonView, error) {
	return s.collect(ctx, func(r *lessonRecord) bool { return r.matches(criteria) })
}

func (s *Store) collect(ctx context.Context, keep func(*lessonRecord) bool) ([]*queries.LessonView, error) {
	if err := checkCtx(ctx, "failed to list lessons"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	views := make([]*queries.LessonView, 0, len(s.lessons))
	for _, rec := range s.lessons {
		if keep(rec) {
			views = append(views, rec.view())
		}
	}
	s.mu.RUnlock()

	sort.Slice(views, func(i, j int) bool {
		if views[i].Topic != views[j].Topic {
			return views[i].Topic < views[j].Topic
		}
		return views[i].ID < views[j].ID
	})
	return views, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*queries.LessonView, error) {
	if err := checkCtx(ctx, "failed to get lesson by id"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.lessons[id]
	if !ok {
		return nil, notFound("lesson not found")
	}
	return rec.view(), nil
}

func (s *Store) LessonsByIDs(ctx context.Context, ids []string) ([]shared.LessonSnapshot, error) {
	if err := checkCtx(ctx, "failed to get lessons by ids"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]shared.LessonSnapshot, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if rec, ok := s.lessons[id]; ok {
			snapshots = append(snapshots, rec.snapshot())
		}
	}
	return snapshots, nil
}

func (s *Store) ListNewestFirst(ctx context.Context) ([]*queries.OrderView, error) {
	if err := checkCtx(ctx, "failed to list orders"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	views := make([]*queries.OrderView, 0, len(s.orders))
	for _, rec := range s.orders {
		lines := make([]queries.OrderLineView, len(rec.lines))
		for i, l := range rec.lines {
			lines[i] = queries.OrderLineView{LessonID: l.lessonID, Quantity: l.quantity}
		}
		views = append(views, &queries.OrderView{
			ID:            rec.id,
			CustomerName:  rec.customerName,
			CustomerPhone: rec.customerPhone,
			Lines:         lines,
			CreatedAt:     rec.createdAt,
		})
	}
	s.mu.RUnlock()

	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return views[i].ID > views[j].ID
	})
	return views, nil
}

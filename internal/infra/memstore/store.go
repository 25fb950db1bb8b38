// Package memstore is an in-process catalog store. It keeps the same contracts as the
// Postgres driver; multi-step writes are applied as sagas and undone in reverse on failure.
package memstore

import (
	"context"
	"sync"
	"time"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/infra"

	"github.com/google/uuid"
)

type lessonRecord struct {
	id        string
	topic     string
	location  string
	price     float64
	space     int
	createdAt time.Time
}

type orderLineRecord struct {
	lessonID string
	quantity int
}

type orderRecord struct {
	id            string
	customerName  string
	customerPhone string
	lines         []orderLineRecord
	createdAt     time.Time
}

type jobRecord struct {
	id        uuid.UUID
	kind      string
	topic     string
	payload   []byte
	runAt     time.Time
	attempts  int
	status    string
	lastError *string
}

type Store struct {
	mu      sync.RWMutex
	lessons map[string]*lessonRecord
	orders  map[string]*orderRecord
	jobs    []*jobRecord
}

func New() *Store {
	return &Store{
		lessons: make(map[string]*lessonRecord),
		orders:  make(map[string]*orderRecord),
	}
}

// Seed loads lessons directly, bypassing the unit of work. Existing ids are replaced.
func (s *Store) Seed(lessons ...*lesson.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range lessons {
		s.lessons[l.ID()] = &lessonRecord{
			id:        l.ID(),
			topic:     l.Topic(),
			location:  l.Location(),
			price:     l.Price(),
			space:     l.Space(),
			createdAt: l.CreatedAt(),
		}
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func checkCtx(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	return nil
}

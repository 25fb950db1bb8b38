package shared

import (
	"context"
	"time"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCommitOutcomeUnknown marks a commit that failed after it may have reached the
// store. The writes may or may not have landed.
var ErrCommitOutcomeUnknown = errs.New("commit outcome unknown")

type UnitOfWork interface {
	// Within: all writes done through tx commit together or not at all. Never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: point reads used for validation before a write
	CommandReads() CommandReads
}

type Tx interface {
	Lessons() LessonRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
}

type CommandReads interface {
	// LessonsByIDs is a single batched read. Unknown ids are absent from the result.
	LessonsByIDs(ctx context.Context, ids []string) ([]LessonSnapshot, error)
}

type LessonRepository interface {
	Create(ctx context.Context, l *lesson.Lesson) error
	// ReserveSpace decrements space by qty only if at least qty remains.
	ReserveSpace(ctx context.Context, lessonID string, qty int) (bool, error)
	CurrentSpace(ctx context.Context, lessonID string) (int, error)
	SetSpace(ctx context.Context, lessonID string, space int) (*LessonSnapshot, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, o *order.Order) (string, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// NotificationOutbox is the relay side of the notification table.
type NotificationOutbox interface {
	ClaimPending(ctx context.Context, limit int, handle func(ctx context.Context, job NotificationJob) error) (int, error)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

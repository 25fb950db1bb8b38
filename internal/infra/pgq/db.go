// Package pgq holds the hand-written SQL for the lesson and order tables. Every query
// takes its DBTX explicitly so callers decide whether it runs on the pool or in a tx.
package pgq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type Lesson struct {
	ID        string
	Topic     string
	Location  string
	Price     pgtype.Numeric
	Space     int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type OrderWithLines struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CreatedAt     pgtype.Timestamptz
	Lines         []byte // JSON array of {lessonId, quantity} in submission order
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type InsertLessonParams struct {
	ID        string
	Topic     string
	Location  string
	Price     pgtype.Numeric
	Space     int32
	CreatedAt time.Time
}

type SpaceDeltaParams struct {
	ID       string
	Quantity int32
}

type SetLessonSpaceParams struct {
	ID    string
	Space int32
}

type SearchLessonsParams struct {
	Pattern string         // ILIKE pattern, wildcards already escaped
	Number  pgtype.Numeric // NULL when the query is not numeric
}

type InsertOrderParams struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CreatedAt     time.Time
	LessonIDs     []string
	Quantities    []int32
}

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
}

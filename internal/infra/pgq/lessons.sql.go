package pgq

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const lessonColumns = `id, topic, location, price, space, created_at, updated_at`

func scanLesson(row pgx.Row) (Lesson, error) {
	var l Lesson
	err := row.Scan(&l.ID, &l.Topic, &l.Location, &l.Price, &l.Space, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func collectLessons(rows pgx.Rows, err error) ([]Lesson, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

const insertLesson = `
INSERT INTO lessons (id, topic, location, price, space, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

func (q *Queries) InsertLesson(ctx context.Context, db DBTX, arg InsertLessonParams) error {
	_, err := db.Exec(ctx, insertLesson, arg.ID, arg.Topic, arg.Location, arg.Price, arg.Space, arg.CreatedAt)
	return err
}

const getLessonByID = `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

func (q *Queries) GetLessonByID(ctx context.Context, db DBTX, id string) (Lesson, error) {
	return scanLesson(db.QueryRow(ctx, getLessonByID, id))
}

const getLessonsByIDs = `SELECT ` + lessonColumns + ` FROM lessons WHERE id = ANY($1::text[]) ORDER BY id`

func (q *Queries) GetLessonsByIDs(ctx context.Context, db DBTX, ids []string) ([]Lesson, error) {
	return collectLessons(db.Query(ctx, getLessonsByIDs, ids))
}

const listLessons = `SELECT ` + lessonColumns + ` FROM lessons ORDER BY topic, id`

func (q *Queries) ListLessons(ctx context.Context, db DBTX) ([]Lesson, error) {
	return collectLessons(db.Query(ctx, listLessons))
}

const searchLessons = `
SELECT ` + lessonColumns + ` FROM lessons
WHERE topic ILIKE $1
   OR location ILIKE $1
   OR ($2::numeric IS NOT NULL AND (price = $2::numeric OR space = $2::numeric))
ORDER BY topic, id`

func (q *Queries) SearchLessons(ctx context.Context, db DBTX, arg SearchLessonsParams) ([]Lesson, error) {
	return collectLessons(db.Query(ctx, searchLessons, arg.Pattern, arg.Number))
}

// The WHERE clause re-checks the balance in the same statement that writes it.
const reserveLessonSpace = `
UPDATE lessons SET space = space - $2, updated_at = NOW()
WHERE id = $1 AND space >= $2`

func (q *Queries) ReserveLessonSpace(ctx context.Context, db DBTX, arg SpaceDeltaParams) (int64, error) {
	tag, err := db.Exec(ctx, reserveLessonSpace, arg.ID, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getLessonSpace = `SELECT space FROM lessons WHERE id = $1`

func (q *Queries) GetLessonSpace(ctx context.Context, db DBTX, id string) (int32, error) {
	var space int32
	err := db.QueryRow(ctx, getLessonSpace, id).Scan(&space)
	return space, err
}

const setLessonSpace = `
UPDATE lessons SET space = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + lessonColumns

func (q *Queries) SetLessonSpace(ctx context.Context, db DBTX, arg SetLessonSpaceParams) (Lesson, error) {
	return scanLesson(db.QueryRow(ctx, setLessonSpace, arg.ID, arg.Space))
}

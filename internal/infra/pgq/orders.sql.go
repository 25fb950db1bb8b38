package pgq

import (
	"context"
)

const insertOrder = `
INSERT INTO orders (id, customer_name, customer_phone, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

const insertOrderLines = `
INSERT INTO order_lines (order_id, position, lesson_id, quantity)
SELECT $1, t.ord - 1, t.lesson_id, t.quantity
FROM unnest($2::text[], $3::int[]) WITH ORDINALITY AS t(lesson_id, quantity, ord)`

// InsertOrder writes the order row and all its lines. Callers run it inside a tx.
func (q *Queries) InsertOrder(ctx context.Context, db DBTX, arg InsertOrderParams) (string, error) {
	var id string
	if err := db.QueryRow(ctx, insertOrder, arg.ID, arg.CustomerName, arg.CustomerPhone, arg.CreatedAt).Scan(&id); err != nil {
		return "", err
	}
	if _, err := db.Exec(ctx, insertOrderLines, id, arg.LessonIDs, arg.Quantities); err != nil {
		return "", err
	}
	return id, nil
}

const listOrdersNewestFirst = `
SELECT o.id, o.customer_name, o.customer_phone, o.created_at,
       COALESCE(
         json_agg(json_build_object('lessonId', l.lesson_id, 'quantity', l.quantity) ORDER BY l.position)
           FILTER (WHERE l.order_id IS NOT NULL),
         '[]'::json
       ) AS lines
FROM orders o
LEFT JOIN order_lines l ON l.order_id = o.id
GROUP BY o.id
ORDER BY o.created_at DESC, o.id DESC`

func (q *Queries) ListOrdersNewestFirst(ctx context.Context, db DBTX) ([]OrderWithLines, error) {
	rows, err := db.Query(ctx, listOrdersNewestFirst)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderWithLines
	for rows.Next() {
		var o OrderWithLines
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CreatedAt, &o.Lines); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

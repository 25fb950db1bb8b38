package order

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawLine is a line item as submitted, before any filtering.
type RawLine struct {
	LessonID string
	Quantity any
}

type Line struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

// Request maps a lesson id to the total quantity requested across all lines for it.
type Request map[string]int

// ValidLines drops lines with a blank lesson id or a quantity that is not a positive
// integer. Surviving lines keep their submission order.
func ValidLines(raw []RawLine) []Line {
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.LessonID)
		if id == "" {
			continue
		}
		qty, ok := ParseQuantity(r.Quantity)
		if !ok {
			continue
		}
		lines = append(lines, Line{LessonID: id, Quantity: qty})
	}
	return lines
}

// Aggregate groups lines by lesson and sums their quantities.
func Aggregate(lines []Line) Request {
	req := make(Request, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		req[l.LessonID] += l.Quantity
	}
	return req
}

// LessonIDs returns the ids in ascending order. Writers lock rows in this order.
func (r Request) LessonIDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseQuantity accepts JSON numbers and numeric strings holding a positive integer.
func ParseQuantity(v any) (int, bool) {
	switch q := v.(type) {
	case int:
		return positive(int64(q))
	case int32:
		return positive(int64(q))
	case int64:
		return positive(q)
	case float64:
		return fromFloat(q)
	case json.Number:
		return fromString(q.String())
	case string:
		return fromString(q)
	default:
		return 0, false
	}
}

func fromString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return positive(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return fromFloat(f)
}

func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return positive(int64(f))
}

func positive(n int64) (int, bool) {
	if n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyCustomerPhone = errors.New("customer phone cannot be empty")
	ErrCustomerTooLong    = errors.New("customer field is too long (max 255 characters)")
	ErrNoValidLines       = errors.New("no valid line items")
)

const MaxCustomerFieldLength = 255

// Order is immutable once persisted. Lines hold the submitted line items before merging.
type Order struct {
	id            string
	customerName  string
	customerPhone string
	lines         []Line
	createdAt     time.Time
}

func NewOrder(customerName, customerPhone string, lines []Line, now time.Time) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)

	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if customerPhone == "" {
		return nil, ErrEmptyCustomerPhone
	}
	if len(customerName) > MaxCustomerFieldLength || len(customerPhone) > MaxCustomerFieldLength {
		return nil, ErrCustomerTooLong
	}
	if len(lines) == 0 {
		return nil, ErrNoValidLines
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)

	return &Order{
		id:            uuid.NewString(),
		customerName:  customerName,
		customerPhone: customerPhone,
		lines:         copied,
		createdAt:     now,
	}, nil
}

// Request is the merged view of the order's lines.
func (o *Order) Request() Request {
	return Aggregate(o.lines)
}

func (o *Order) ID() string            { return o.id }
func (o *Order) CustomerName() string  { return o.customerName }
func (o *Order) CustomerPhone() string { return o.customerPhone }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }

func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

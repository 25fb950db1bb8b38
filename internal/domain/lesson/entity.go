package lesson

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTopic       = errors.New("topic cannot be empty")
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrTopicTooLong     = errors.New("topic is too long (max 255 characters)")
	ErrLocationTooLong  = errors.New("location is too long (max 255 characters)")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidPrice     = errors.New("price must be a finite number")
	ErrPriceTooLarge    = errors.New("price is too large (max 99999999.99)")
	ErrNegativeSpace    = errors.New("space cannot be negative")
	ErrSpaceOutOfBounds = errors.New("space is too large")
)

const (
	MaxTextLength = 255
	MaxSpace      = math.MaxInt32
	// MaxPrice fits NUMERIC(10,2).
	MaxPrice = 99_999_999.99
)

// Lesson is a catalog item with finite bookable capacity. Space never goes below zero.
type Lesson struct {
	id        string
	topic     string
	location  string
	price     float64
	space     int
	createdAt time.Time
}

func NewLesson(id, topic, location string, price float64, space int, now time.Time) (*Lesson, error) {
	topic = strings.TrimSpace(topic)
	location = strings.TrimSpace(location)

	if err := validateText(topic, ErrEmptyTopic, ErrTopicTooLong); err != nil {
		return nil, err
	}
	if err := validateText(location, ErrEmptyLocation, ErrLocationTooLong); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if err := ValidateSpace(space); err != nil {
		return nil, err
	}

	if id == "" {
		id = uuid.NewString()
	}

	return &Lesson{
		id:        id,
		topic:     topic,
		location:  location,
		price:     RoundPrice(price),
		space:     space,
		createdAt: now,
	}, nil
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if RoundPrice(price) > MaxPrice {
		return ErrPriceTooLarge
	}
	return nil
}

// RoundPrice rounds to whole cents, the precision every store keeps.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

func ValidateSpace(space int) error {
	if space < 0 {
		return ErrNegativeSpace
	}
	if space > MaxSpace {
		return ErrSpaceOutOfBounds
	}
	return nil
}

func validateText(s string, emptyErr, tooLongErr error) error {
	if s == "" {
		return emptyErr
	}
	if len(s) > MaxTextLength {
		return tooLongErr
	}
	return nil
}

func (l *Lesson) ID() string           { return l.id }
func (l *Lesson) Topic() string        { return l.topic }
func (l *Lesson) Location() string     { return l.location }
func (l *Lesson) Price() float64       { return l.price }
func (l *Lesson) Space() int           { return l.space }
func (l *Lesson) CreatedAt() time.Time { return l.createdAt }

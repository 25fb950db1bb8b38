package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the four failure kinds surfaced to callers. The typed errors below
// match them through errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrCapacity   = errors.New("insufficient capacity")
	ErrStore      = errors.New("store unavailable")
)

type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type NotFoundError struct {
	Entity string
	IDs    []string
}

func NewNotFoundError(entity string, ids ...string) *NotFoundError {
	return &NotFoundError{Entity: entity, IDs: ids}
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CapacityError names the first lesson whose remaining space could not cover the request.
// Available is the space seen at the time of the failure and is always below Requested.
type CapacityError struct {
	LessonID  string
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient space for lesson %s: requested %d, available %d",
		e.LessonID, e.Requested, e.Available)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store error: " + e.Op
	}
	return "store error: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

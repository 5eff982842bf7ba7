package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("model: not found")
	ErrValidation = errors.New("model: validation failed")
)

// NotFoundError reports an operation on an unknown id. Callers treat it as
// a no-op result.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model: %s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func TaskNotFound(id string) error {
	return &NotFoundError{Kind: "task", ID: id}
}

func NoteNotFound(id string) error {
	return &NotFoundError{Kind: "note", ID: id}
}

package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("aggregate not found")

// NotFoundError reports that an aggregate is absent from its store.
type NotFoundError struct {
	Aggregate string
	ID        string
}

// NewNotFoundError creates a not-found error for the named aggregate type.
func NewNotFoundError(aggregate, id string) *NotFoundError {
	return &NotFoundError{Aggregate: aggregate, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s was not found", e.Aggregate, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

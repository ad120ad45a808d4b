package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that no entity carries the requested code.
var ErrNotFound = errors.New("not found")

// ErrArticleReferenced signals a fail-closed delete: the article is still
// referenced by at least one order, so removing it is rejected.
var ErrArticleReferenced = errors.New("article is referenced by existing orders")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps an unexpected database failure with enough context to
// diagnose it. Raw driver errors never cross the service boundary.
type StorageError struct {
	Op     string
	Entity string
	Key    string
	Err    error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage failure during %s %s: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("storage failure during %s %s %q: %v", e.Op, e.Entity, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storage(op, entity, key string, err error) *StorageError {
	return &StorageError{Op: op, Entity: entity, Key: key, Err: err}
}

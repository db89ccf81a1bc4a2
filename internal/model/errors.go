package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a detail lookup that matched no provider.
	ErrNotFound = errors.New("provider not found")
	// ErrStorageUnavailable marks every failure coming from the data store.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidParameter is raised at the HTTP boundary for unparsable input.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// StorageError wraps a driver error with the operation that produced it.
// errors.Is matches both ErrStorageUnavailable and the wrapped error.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrStorageUnavailable, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

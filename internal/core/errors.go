package core

import (
	"errors"
	"fmt"
)

// Error kinds. Callers classify failures with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

var (
	ErrEmptyTitle     = fmt.Errorf("%w: title is empty", ErrValidation)
	ErrEmptyCategory  = fmt.Errorf("%w: category is empty", ErrValidation)
	ErrNegativePrice  = fmt.Errorf("%w: price must be zero or more", ErrValidation)
	ErrMissingDate    = fmt.Errorf("%w: date is required", ErrValidation)
	ErrEmptyOwner     = fmt.Errorf("%w: owner is empty", ErrValidation)
	ErrMissingPeriod  = fmt.Errorf("%w: start and due dates are required", ErrValidation)
	ErrDueBeforeStart = fmt.Errorf("%w: due date must not be before start date", ErrValidation)
	ErrEmptyStatus    = fmt.Errorf("%w: status is empty", ErrValidation)
	ErrEmptyName      = fmt.Errorf("%w: schedule name is empty", ErrValidation)
	ErrDuplicateName  = fmt.Errorf("%w: schedule name already exists", ErrValidation)
)

// StorageError reports an I/O failure on a specific path.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err with the operation and offending path.
func NewStorageError(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}

// IndexNotFound builds the NotFound error for a zero-based index, reported 1-based.
func IndexNotFound(what string, index int) error {
	return fmt.Errorf("%w: no %s at position %d", ErrNotFound, what, index+1)
}

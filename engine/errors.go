package engine

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound indicates a named column is absent from the dataset.
var ErrColumnNotFound = errors.New("column not found")

// ErrNotNumeric indicates a column cannot be read as numbers.
var ErrNotNumeric = errors.New("column is not numeric")

// ErrGridEntryMissing indicates a (time, category, column) combination had
// no rows, so the grid holds no entry for it.
var ErrGridEntryMissing = errors.New("grid entry missing")

// ErrInvalidLogDomain indicates a log-scale range over values <= 0.
var ErrInvalidLogDomain = errors.New("log scale requires positive values")

// ErrNoValues indicates a range computation over an empty value list.
var ErrNoValues = errors.New("no values")

// ColumnError reports a failure tied to one dataset column.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

func columnError(column string, err error) *ColumnError {
	return &ColumnError{Column: column, Err: err}
}

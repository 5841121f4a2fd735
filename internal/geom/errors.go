package geom

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyMatrix     = errors.New("matrix has no rows")
	ErrRaggedRows      = errors.New("matrix rows differ in length")
	ErrInvalidShape    = errors.New("invalid shape")
)

// IndexError describes an access outside the valid range of one axis.
type IndexError struct {
	Axis  string // "column", "row" or "component"
	Index int    // Requested index
	Limit int    // Exclusive upper bound
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s %d not in [0, %d)", ErrIndexOutOfRange, e.Axis, e.Index, e.Limit)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(axis string, index, limit int) error {
	if index < 0 || index >= limit {
		return &IndexError{Axis: axis, Index: index, Limit: limit}
	}
	return nil
}

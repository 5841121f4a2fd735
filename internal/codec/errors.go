package codec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLayoutMismatch  = errors.New("layout mismatch")
	ErrUnsupportedType = errors.New("unsupported scalar type")
	ErrUnknownKind     = errors.New("unknown scalar kind")
)

// LayoutError reports a byte slice that cannot hold a value of Kind.
type LayoutError struct {
	Kind Kind // Kind being decoded
	Want int  // Bytes required
	Got  int  // Bytes available
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %s needs %d bytes, got %d", ErrLayoutMismatch, e.Kind, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrLayoutMismatch.
func (e *LayoutError) Unwrap() error {
	return ErrLayoutMismatch
}

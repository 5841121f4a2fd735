package serialization

import (
	"errors"
	"fmt"

	"github.com/born-ml/rawio/internal/codec"
)

// Common errors.
var (
	ErrWriteFailure     = errors.New("write failure")
	ErrReadFailure      = errors.New("read failure")
	ErrUnexpectedEOF    = errors.New("unexpected end of store")
	ErrClosed           = errors.New("serializer is closed")
	ErrChecksumMismatch = errors.New("checksum mismatch: store may be corrupted")

	// ErrLayoutMismatch is shared with the codec so that errors.Is matches
	// both decode-length and ledger mismatches.
	ErrLayoutMismatch = codec.ErrLayoutMismatch

	ErrUnsupportedType = codec.ErrUnsupportedType
)

// PositionError reports a failure on one value of a Serialize or
// Deserialize call.
type PositionError struct {
	Op       string     // "serialize" or "deserialize"
	Position int        // 1-based argument index
	Kind     codec.Kind // Kind of the value, Invalid if unsupported
	Offset   int64      // Store offset of the value
	Err      error      // Underlying error, wraps one of the sentinels above
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	if e.Kind == codec.Invalid {
		return fmt.Sprintf("%s: value %d: %v", e.Op, e.Position, e.Err)
	}
	return fmt.Sprintf("%s: value %d (%s at offset %d): %v", e.Op, e.Position, e.Kind, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

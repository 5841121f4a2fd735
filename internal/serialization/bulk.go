package serialization

import (
	"iter"

	"github.com/born-ml/rawio/internal/codec"
)

// Sink accepts scalar sequences. *Serializer implements it.
type Sink interface {
	Serialize(values ...any) error
}

// Source yields scalar sequences. *Serializer and *Snapshot implement it.
type Source interface {
	Deserialize(targets ...any) error
}

var (
	_ Sink   = (*Serializer)(nil)
	_ Source = (*Serializer)(nil)
	_ Source = (*Snapshot)(nil)
)

// WriteSlice serializes values in order. Error positions are 1-based
// indexes into values.
func WriteSlice[T codec.Scalar](dst Sink, values []T) error {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return dst.Serialize(args...)
}

// WriteSeq serializes every value seq yields, such as the components of a
// vector or the cells of a matrix.
func WriteSeq[T codec.Scalar](dst Sink, seq iter.Seq[T]) error {
	var args []any
	for v := range seq {
		args = append(args, v)
	}
	if len(args) == 0 {
		return nil
	}
	return dst.Serialize(args...)
}

// ReadSlice fills dst in order.
func ReadSlice[T codec.Scalar](src Source, dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	targets := make([]any, len(dst))
	for i := range dst {
		targets[i] = &dst[i]
	}
	return src.Deserialize(targets...)
}

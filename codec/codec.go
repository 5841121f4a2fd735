// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package codec provides raw encoding of fixed-width scalar values.
//
// An encoding is exactly the in-memory form of the value in host byte order:
// no length prefix, no type tag, no endianness normalization.
//
// Example:
//
//	b := codec.Encode(int32(7)) // 4 bytes
//	v, err := codec.Decode[int32](b)
//	if err != nil {
//	    log.Fatal(err)
//	}
package codec

import (
	"github.com/born-ml/rawio/internal/codec"
)

// Scalar is a constraint for values with a statically known byte width.
type Scalar = codec.Scalar

// Kind is the runtime tag of a Scalar type.
type Kind = codec.Kind

// Scalar kinds.
const (
	Invalid Kind = codec.Invalid
	Int8    Kind = codec.Int8
	Int16   Kind = codec.Int16
	Int32   Kind = codec.Int32
	Int64   Kind = codec.Int64
	Uint8   Kind = codec.Uint8
	Uint16  Kind = codec.Uint16
	Uint32  Kind = codec.Uint32
	Uint64  Kind = codec.Uint64
	Float32 Kind = codec.Float32
	Float64 Kind = codec.Float64
	Bool    Kind = codec.Bool
)

// LayoutError reports a byte slice too short for the kind being decoded.
type LayoutError = codec.LayoutError

// Errors returned by the codec.
var (
	ErrLayoutMismatch  = codec.ErrLayoutMismatch
	ErrUnsupportedType = codec.ErrUnsupportedType
	ErrUnknownKind     = codec.ErrUnknownKind
)

// Encode returns exactly SizeOf[T]() bytes holding the in-memory form of v.
func Encode[T Scalar](v T) []byte {
	return codec.Encode(v)
}

// AppendEncode appends the encoding of v to dst.
func AppendEncode[T Scalar](dst []byte, v T) []byte {
	return codec.AppendEncode(dst, v)
}

// Decode reinterprets the first SizeOf[T]() bytes of b as a T. A shorter
// slice fails with an error matching ErrLayoutMismatch.
func Decode[T Scalar](b []byte) (T, error) {
	return codec.Decode[T](b)
}

// SizeOf returns the byte width of T.
func SizeOf[T Scalar]() int {
	return codec.SizeOf[T]()
}

// KindOf returns the kind of T.
func KindOf[T Scalar]() Kind {
	return codec.KindOf[T]()
}

// ParseKind resolves a kind from a name such as "float64" or "f64".
func ParseKind(s string) (Kind, error) {
	return codec.ParseKind(s)
}

// ParseValue parses text as a value of kind, returned as the matching Go type.
func ParseValue(kind Kind, text string) (any, error) {
	return codec.ParseValue(kind, text)
}

// NewTarget returns a pointer to a new zero value of kind.
func NewTarget(kind Kind) (any, error) {
	return codec.NewTarget(kind)
}

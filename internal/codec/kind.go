// Package codec encodes fixed-width scalar values to and from their raw
// in-memory byte form.
package codec

import (
	"fmt"
	"reflect"
	"strings"
)

// Scalar is a constraint for values with a statically known byte width.
type Scalar interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | bool
}

// Kind is the runtime tag of a Scalar type.
type Kind int

// Supported scalar kinds.
const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
)

// Size returns the byte width of the kind.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8, Bool:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// ParseKind resolves a kind from its long name ("float64") or short
// name ("f64").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8", "i8":
		return Int8, nil
	case "int16", "i16":
		return Int16, nil
	case "int32", "i32":
		return Int32, nil
	case "int64", "i64":
		return Int64, nil
	case "uint8", "u8", "byte":
		return Uint8, nil
	case "uint16", "u16":
		return Uint16, nil
	case "uint32", "u32":
		return Uint32, nil
	case "uint64", "u64":
		return Uint64, nil
	case "float32", "f32":
		return Float32, nil
	case "float64", "f64":
		return Float64, nil
	case "bool":
		return Bool, nil
	default:
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KindOf returns the kind of the type parameter T.
func KindOf[T Scalar]() Kind {
	var zero T
	return kindOfValue(zero)
}

// SizeOf returns the byte width of T.
func SizeOf[T Scalar]() int {
	return KindOf[T]().Size()
}

// KindOfValue returns the kind of v, or Invalid if v is not a Scalar.
func KindOfValue(v any) Kind {
	return kindOfValue(v)
}

// TargetKind returns the kind of the scalar v points to, or Invalid when v
// is not a non-nil pointer to a Scalar.
func TargetKind(v any) Kind {
	k := pointerKind(v)
	if k != Invalid && reflect.ValueOf(v).IsNil() {
		return Invalid
	}
	return k
}

func pointerKind(v any) Kind {
	switch v.(type) {
	case *int8:
		return Int8
	case *int16:
		return Int16
	case *int32:
		return Int32
	case *int64:
		return Int64
	case *uint8:
		return Uint8
	case *uint16:
		return Uint16
	case *uint32:
		return Uint32
	case *uint64:
		return Uint64
	case *float32:
		return Float32
	case *float64:
		return Float64
	case *bool:
		return Bool
	default:
		return Invalid
	}
}

func kindOfValue(v any) Kind {
	switch v.(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		return Invalid
	}
}

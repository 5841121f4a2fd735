package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/sys/cpu"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// order is the host byte order. Encodings are the in-memory form of a
// value and are not portable between hosts of different endianness.
var order = nativeOrder()

func nativeOrder() byteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Encode returns exactly SizeOf[T]() bytes holding the in-memory form of v.
func Encode[T Scalar](v T) []byte {
	return AppendEncode(make([]byte, 0, SizeOf[T]()), v)
}

// AppendEncode appends the encoding of v to dst and returns the extended slice.
func AppendEncode[T Scalar](dst []byte, v T) []byte {
	out, _ := AppendValue(dst, v)
	return out
}

// Decode reinterprets the first SizeOf[T]() bytes of b as a T.
// A shorter slice fails with a *LayoutError.
func Decode[T Scalar](b []byte) (T, error) {
	var out T
	if err := DecodeInto(&out, b); err != nil {
		return out, err
	}
	return out, nil
}

// AppendValue appends the encoding of a dynamically typed scalar.
// Values outside the Scalar set fail with ErrUnsupportedType.
func AppendValue(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case int8:
		return append(dst, byte(x)), nil
	case uint8:
		return append(dst, x), nil
	case bool:
		if x {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case int16:
		return order.AppendUint16(dst, uint16(x)), nil
	case uint16:
		return order.AppendUint16(dst, x), nil
	case int32:
		return order.AppendUint32(dst, uint32(x)), nil
	case uint32:
		return order.AppendUint32(dst, x), nil
	case float32:
		return order.AppendUint32(dst, math.Float32bits(x)), nil
	case int64:
		return order.AppendUint64(dst, uint64(x)), nil
	case uint64:
		return order.AppendUint64(dst, x), nil
	case float64:
		return order.AppendUint64(dst, math.Float64bits(x)), nil
	default:
		return dst, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// DecodeInto decodes b into the scalar that target points to. target must be
// a non-nil pointer to a Scalar.
// Only the first Size() bytes of b are read.
func DecodeInto(target any, b []byte) error {
	kind := TargetKind(target)
	if kind == Invalid {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, target)
	}
	if len(b) < kind.Size() {
		return &LayoutError{Kind: kind, Want: kind.Size(), Got: len(b)}
	}

	switch p := target.(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *bool:
		*p = b[0] != 0
	case *int16:
		*p = int16(order.Uint16(b))
	case *uint16:
		*p = order.Uint16(b)
	case *int32:
		*p = int32(order.Uint32(b))
	case *uint32:
		*p = order.Uint32(b)
	case *float32:
		*p = math.Float32frombits(order.Uint32(b))
	case *int64:
		*p = int64(order.Uint64(b))
	case *uint64:
		*p = order.Uint64(b)
	case *float64:
		*p = math.Float64frombits(order.Uint64(b))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, target)
	}
	return nil
}

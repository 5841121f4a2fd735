package codec

import (
	"fmt"
	"strconv"
)

// ParseValue parses text as a value of the given kind and returns it as the
// matching Go scalar type.
func ParseValue(kind Kind, text string) (any, error) {
	switch kind {
	case Int8, Int16, Int32, Int64:
		n, err := strconv.ParseInt(text, 0, kind.Size()*8)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", kind, err)
		}
		switch kind {
		case Int8:
			return int8(n), nil
		case Int16:
			return int16(n), nil
		case Int32:
			return int32(n), nil
		default:
			return n, nil
		}
	case Uint8, Uint16, Uint32, Uint64:
		n, err := strconv.ParseUint(text, 0, kind.Size()*8)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", kind, err)
		}
		switch kind {
		case Uint8:
			return uint8(n), nil
		case Uint16:
			return uint16(n), nil
		case Uint32:
			return uint32(n), nil
		default:
			return n, nil
		}
	case Float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", kind, err)
		}
		return float32(f), nil
	case Float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", kind, err)
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", kind, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// NewTarget allocates a zero value of kind and returns a pointer to it,
// suitable for DecodeInto.
func NewTarget(kind Kind) (any, error) {
	switch kind {
	case Int8:
		return new(int8), nil
	case Int16:
		return new(int16), nil
	case Int32:
		return new(int32), nil
	case Int64:
		return new(int64), nil
	case Uint8:
		return new(uint8), nil
	case Uint16:
		return new(uint16), nil
	case Uint32:
		return new(uint32), nil
	case Uint64:
		return new(uint64), nil
	case Float32:
		return new(float32), nil
	case Float64:
		return new(float64), nil
	case Bool:
		return new(bool), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSize(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
		name string
	}{
		{Int8, 1, "int8"},
		{Int16, 2, "int16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Uint16, 2, "uint16"},
		{Uint32, 4, "uint32"},
		{Uint64, 8, "uint64"},
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Bool, 1, "bool"},
		{Invalid, 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.kind.Size())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, 1, SizeOf[int8]())
	assert.Equal(t, 2, SizeOf[uint16]())
	assert.Equal(t, 4, SizeOf[float32]())
	assert.Equal(t, 8, SizeOf[float64]())
	assert.Equal(t, 1, SizeOf[bool]())
	assert.Equal(t, Int64, KindOf[int64]())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("f64")
	require.NoError(t, err)
	assert.Equal(t, Float64, k)

	k, err = ParseKind(" Int32 ")
	require.NoError(t, err)
	assert.Equal(t, Int32, k)

	_, err = ParseKind("complex128")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestEncodeWidth(t *testing.T) {
	assert.Len(t, Encode(int8(-1)), 1)
	assert.Len(t, Encode(int16(300)), 2)
	assert.Len(t, Encode(int32(7)), 4)
	assert.Len(t, Encode(uint64(7)), 8)
	assert.Len(t, Encode(float32(1.5)), 4)
	assert.Len(t, Encode(2.5), 8)
	assert.Len(t, Encode(true), 1)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	checkRoundTrip(t, int8(-128))
	checkRoundTrip(t, int16(-12345))
	checkRoundTrip(t, int32(math.MinInt32))
	checkRoundTrip(t, int64(math.MaxInt64))
	checkRoundTrip(t, uint8(255))
	checkRoundTrip(t, uint16(65535))
	checkRoundTrip(t, uint32(0xDEADBEEF))
	checkRoundTrip(t, uint64(math.MaxUint64))
	checkRoundTrip(t, float32(-3.25))
	checkRoundTrip(t, math.Pi)
	checkRoundTrip(t, true)
	checkRoundTrip(t, false)
}

func checkRoundTrip[T Scalar](t *testing.T, v T) {
	t.Helper()
	got, err := Decode[T](Encode(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestEncodeIsNativeMemoryForm(t *testing.T) {
	b := Encode(uint32(0x01020304))
	if order.Uint32(b) != 0x01020304 {
		t.Fatalf("native order mismatch: %x", b)
	}
	assert.Equal(t, math.Float64bits(1.0), order.Uint64(Encode(1.0)))
}

func TestDecodeShortSlice(t *testing.T) {
	_, err := Decode[float64](Encode(int32(1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, Float64, layoutErr.Kind)
	assert.Equal(t, 8, layoutErr.Want)
	assert.Equal(t, 4, layoutErr.Got)
}

func TestDecodeUsesPrefixOnly(t *testing.T) {
	b := append(Encode(int16(42)), 0xFF, 0xFF)
	got, err := Decode[int16](b)
	require.NoError(t, err)
	assert.Equal(t, int16(42), got)
}

func TestAppendValueUnsupported(t *testing.T) {
	_, err := AppendValue(nil, "text")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = AppendValue(nil, 3) // plain int has no fixed width
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDecodeIntoRejectsBadTargets(t *testing.T) {
	b := Encode(int32(1))

	var v int32
	assert.ErrorIs(t, DecodeInto(v, b), ErrUnsupportedType)

	var nilPtr *int32
	assert.ErrorIs(t, DecodeInto(nilPtr, b), ErrUnsupportedType)

	require.NoError(t, DecodeInto(&v, b))
	assert.Equal(t, int32(1), v)
}

func TestAppendEncode(t *testing.T) {
	buf := AppendEncode(nil, int32(1))
	buf = AppendEncode(buf, 2.5)
	require.Len(t, buf, 12)

	first, err := Decode[int32](buf)
	require.NoError(t, err)
	second, err := Decode[float64](buf[4:])
	require.NoError(t, err)
	assert.Equal(t, int32(1), first)
	assert.Equal(t, 2.5, second)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(Int32, "-17")
	require.NoError(t, err)
	assert.Equal(t, int32(-17), v)

	v, err = ParseValue(Uint8, "0xff")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	v, err = ParseValue(Float64, "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = ParseValue(Bool, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = ParseValue(Int8, "300")
	assert.Error(t, err)

	_, err = ParseValue(Invalid, "1")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewTarget(t *testing.T) {
	target, err := NewTarget(Float32)
	require.NoError(t, err)
	assert.Equal(t, Float32, TargetKind(target))

	require.NoError(t, DecodeInto(target, Encode(float32(0.5))))
	assert.Equal(t, float32(0.5), *(target.(*float32)))

	_, err = NewTarget(Invalid)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

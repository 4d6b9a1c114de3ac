package extract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	require.Equal(t, `"a":`, string(Pattern("a")))
	require.Equal(t, `"":`, string(Pattern("")))
	require.Equal(t, `"user.id":`, string(Pattern("user.id")))
}

func TestHas(t *testing.T) {
	require.True(t, Has{}.Extract(nil))
	require.True(t, Has{}.Extract([]byte("garbage")))
}

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"true}", true},
		{"trueish", true},
		{`"true"`, false},
		{"tru", false},
		{"false", false},
		{"1", false},
		{"", false},
		{" true", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Bool{}.Extract([]byte(tt.value)), "value %q", tt.value)
	}
}

func TestNumeric_Unsigned(t *testing.T) {
	tests := []struct {
		value string
		want  uint64
	}{
		{"42", 42},
		{`"42"`, 42},
		{"42,", 42},
		{"42}", 42},
		{"+7", 7},
		{"abc", 0},
		{"", 0},
		{`"`, 0},
		{"-5", 0},
		{"18446744073709551615", math.MaxUint64},
		{"18446744073709551616", 0},
		{"3.9", 3},
		{`""42"`, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Numeric[uint64]{}.Extract([]byte(tt.value)), "value %q", tt.value)
	}
}

func TestNumeric_Signed(t *testing.T) {
	require.Equal(t, int64(-12), Numeric[int64]{}.Extract([]byte("-12,")))
	require.Equal(t, int64(-12), Numeric[int64]{}.Extract([]byte(`"-12"`)))
	require.Equal(t, int64(0), Numeric[int64]{}.Extract([]byte("-")))
	require.Equal(t, int64(0), Numeric[int64]{}.Extract([]byte("x1")))
	require.Equal(t, int8(127), Numeric[int8]{}.Extract([]byte("127")))
	require.Equal(t, int8(0), Numeric[int8]{}.Extract([]byte("128")), "out of range yields zero")
	require.Equal(t, uint16(65535), Numeric[uint16]{}.Extract([]byte("65535")))
	require.Equal(t, uint32(0), Numeric[uint32]{}.Extract([]byte("4294967296")))
}

func TestNumeric_Float(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"1.5", 1.5},
		{`"2.25"`, 2.25},
		{"-0.5}", -0.5},
		{"1e3,", 1000},
		{"1E-2", 0.01},
		{"1e", 1},
		{"1e+", 1},
		{".5", 0.5},
		{"5.", 5},
		{"7", 7},
		{"abc", 0},
		{".", 0},
		{"", 0},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, Numeric[float64]{}.Extract([]byte(tt.value)), 1e-12, "value %q", tt.value)
	}

	require.True(t, math.IsInf(Numeric[float64]{}.Extract([]byte("inf")), 1))
	require.True(t, math.IsInf(Numeric[float64]{}.Extract([]byte("-Infinity")), -1))
	require.True(t, math.IsNaN(Numeric[float64]{}.Extract([]byte("nan"))))
	require.Equal(t, float32(0.25), Numeric[float32]{}.Extract([]byte("0.25")))
}

type celsius float64

type rowID uint32

func TestNumeric_NamedTypes(t *testing.T) {
	require.Equal(t, celsius(21.5), Numeric[celsius]{}.Extract([]byte("21.5")))
	require.Equal(t, rowID(9), Numeric[rowID]{}.Extract([]byte(`"9"`)))
	require.Equal(t, rowID(0), Numeric[rowID]{}.Extract([]byte("-9")))
}

type level int8

func TestBitSize(t *testing.T) {
	require.Equal(t, 8, bitSize[int8]())
	require.Equal(t, 8, bitSize[uint8]())
	require.Equal(t, 8, bitSize[level]())
	require.Equal(t, 16, bitSize[int16]())
	require.Equal(t, 16, bitSize[uint16]())
	require.Equal(t, 32, bitSize[int32]())
	require.Equal(t, 32, bitSize[rowID]())
	require.Equal(t, 64, bitSize[int64]())
	require.Equal(t, 64, bitSize[uint64]())
	require.Equal(t, 32, bitSize[float32]())
	require.Equal(t, 64, bitSize[float64]())
	require.Equal(t, 64, bitSize[celsius]())
}

func TestNumeric_NarrowTypesRejectOverflow(t *testing.T) {
	require.Equal(t, level(127), Numeric[level]{}.Extract([]byte("127")))
	require.Equal(t, level(0), Numeric[level]{}.Extract([]byte("128")))
	require.Equal(t, uint16(0), Numeric[uint16]{}.Extract([]byte("65536")))
	require.Equal(t, float32(1.5), Numeric[float32]{}.Extract([]byte("1.5")))
}

func TestNumeric_StaysInsideSpan(t *testing.T) {
	row := []byte("12345")
	require.Equal(t, uint64(12), Numeric[uint64]{}.Extract(row[:2:2]))
}

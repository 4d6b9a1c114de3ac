package extract

import "strconv"

// Integer is the set of integer result types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating point result types.
type Float interface {
	~float32 | ~float64
}

// Number is every numeric result type Numeric supports.
type Number interface {
	Integer | Float
}

// Numeric parses the numeric prefix of a value.
//
// One leading double quote is skipped so that `"42"` reads as 42. Parsing
// stops at the first byte that cannot continue the number. Empty, garbage and
// out-of-range input yield 0.
type Numeric[T Number] struct{}

var (
	_ Fixed[uint64]  = Numeric[uint64]{}
	_ Fixed[int64]   = Numeric[int64]{}
	_ Fixed[float64] = Numeric[float64]{}
)

// Extract parses value as T.
func (Numeric[T]) Extract(value []byte) T {
	if len(value) > 0 && value[0] == '"' {
		value = value[1:]
	}

	switch {
	case isFloat[T]():
		return T(parseFloat(value, bitSize[T]()))
	case isUnsigned[T]():
		return T(parseUint(value, bitSize[T]()))
	default:
		return T(parseInt(value, bitSize[T]()))
	}
}

// bitSize returns the width of T. Floats are told apart by precision and
// integers by the first power of two that truncates to zero.
func bitSize[T Number]() int {
	if isFloat[T]() {
		x := 1 + 1e-10
		if float64(T(x)) != x {
			return 32
		}

		return 64
	}

	for _, bits := range [...]int{8, 16, 32} {
		if T(uint64(1)<<bits) == 0 {
			return bits
		}
	}

	return 64
}

func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

func isUnsigned[T Number]() bool {
	var zero T
	return zero-1 > 0
}

// integerPrefix returns the length of an optionally signed run of digits at
// the start of b, or 0 if there are no digits.
func integerPrefix(b []byte) int {
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	start := i
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	if i == start {
		return 0
	}

	return i
}

// floatPrefix returns the length of the longest decimal floating point literal
// at the start of b: sign, digits, fraction and exponent, or inf/nan.
func floatPrefix(b []byte) int {
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}

	if n := specialPrefix(b[i:]); n > 0 {
		return i + n
	}

	digits := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && isDigit(b[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expStart := j
		for j < len(b) && isDigit(b[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return i
}

func specialPrefix(b []byte) int {
	for _, word := range [...]string{"infinity", "inf", "nan"} {
		if len(b) >= len(word) && equalFold(b[:len(word)], word) {
			return len(word)
		}
	}

	return 0
}

func equalFold(b []byte, lower string) bool {
	for i := range b {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func parseUint(b []byte, bits int) uint64 {
	n := integerPrefix(b)
	if n == 0 || b[0] == '-' {
		return 0
	}
	if b[0] == '+' {
		b = b[1:]
		n--
	}

	v, err := strconv.ParseUint(string(b[:n]), 10, bits)
	if err != nil {
		return 0
	}

	return v
}

func parseInt(b []byte, bits int) int64 {
	n := integerPrefix(b)
	if n == 0 {
		return 0
	}

	v, err := strconv.ParseInt(string(b[:n]), 10, bits)
	if err != nil {
		return 0
	}

	return v
}

func parseFloat(b []byte, bits int) float64 {
	n := floatPrefix(b)
	if n == 0 {
		return 0
	}

	v, err := strconv.ParseFloat(string(b[:n]), bits)
	if err != nil {
		return 0
	}

	return v
}

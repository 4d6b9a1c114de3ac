package extract

// Fixed converts a value span into a fixed-width result.
// Implementations return the zero value when the span holds no usable value.
type Fixed[T any] interface {
	Extract(value []byte) T
}

// Appender appends the decoded value to dst.
//
// On success it returns the extended buffer and true. On failure it returns
// false and the caller discards everything appended past len(dst).
type Appender interface {
	Append(dst []byte, value []byte) ([]byte, bool)
}

// Pattern returns the literal searched for a key: `"` + key + `":`.
func Pattern(key string) []byte {
	p := make([]byte, 0, len(key)+3)
	p = append(p, '"')
	p = append(p, key...)

	return append(p, '"', ':')
}

// Has reports the key as present regardless of its value.
type Has struct{}

var _ Fixed[bool] = Has{}

// Extract always returns true.
func (Has) Extract([]byte) bool {
	return true
}

// Bool reports whether the value is the bare literal true.
//
// Quoted "true" and anything shorter than four bytes are false.
type Bool struct{}

var _ Fixed[bool] = Bool{}

// Extract returns true iff value starts with `true`.
func (Bool) Extract(value []byte) bool {
	return len(value) >= 4 && string(value[:4]) == "true"
}

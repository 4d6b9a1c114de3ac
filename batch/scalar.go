package batch

import (
	"bytes"

	"github.com/arloliu/visitparam/extract"
)

// valueOf returns the span following the first occurrence of key in data, or
// false when the key is missing or nothing follows it.
func valueOf(data []byte, key string) ([]byte, bool) {
	pattern := extract.Pattern(key)
	pos := bytes.Index(data, pattern)
	if pos < 0 || pos+len(pattern) >= len(data) {
		return nil, false
	}

	return data[pos+len(pattern) : len(data) : len(data)], true
}

// ConstantConstant extracts key from a single constant string.
func ConstantConstant[T any](data []byte, key string, ex extract.Fixed[T]) T {
	value, ok := valueOf(data, key)
	if !ok {
		var zero T
		return zero
	}

	return ex.Extract(value)
}

// ConstantConstantString extracts key from a single constant string. It
// returns an empty result when the key is missing or the value fails to decode.
func ConstantConstantString(data []byte, key string, ex extract.Appender) []byte {
	value, ok := valueOf(data, key)
	if !ok {
		return []byte{}
	}

	out, ok := ex.Append(nil, value)
	if !ok {
		return []byte{}
	}
	if out == nil {
		out = []byte{}
	}

	return out
}

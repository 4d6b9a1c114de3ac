package extract

import "unicode/utf8"

// String decodes a double-quoted JSON string value.
//
// Supported escapes are \" \\ \/ \b \f \n \r \t and \uXXXX. A \u escape is
// encoded to UTF-8 on its own; surrogate halves are not combined and fail the
// value, as do malformed hex digits. Any other escaped byte is kept as-is.
// The value fails when it does not start with '"' or when the row ends before
// the closing quote.
type String struct{}

var _ Appender = String{}

// Append appends the decoded string to dst.
func (String) Append(dst []byte, value []byte) ([]byte, bool) {
	if len(value) == 0 || value[0] != '"' {
		return dst, false
	}

	for pos := 1; pos < len(value); {
		c := value[pos]
		switch c {
		case '"':
			return dst, true
		case '\\':
			pos++
			if pos >= len(value) {
				return dst, false
			}

			switch esc := value[pos]; esc {
			case '"', '\\', '/':
				dst = append(dst, esc)
			case 'b':
				dst = append(dst, '\b')
			case 'f':
				dst = append(dst, '\f')
			case 'n':
				dst = append(dst, '\n')
			case 'r':
				dst = append(dst, '\r')
			case 't':
				dst = append(dst, '\t')
			case 'u':
				r, ok := unhex4(value[pos+1:])
				if !ok {
					return dst, false
				}
				if dst, ok = appendCodePoint(dst, r); !ok {
					return dst, false
				}
				pos += 4
			default:
				dst = append(dst, esc)
			}
			pos++
		default:
			dst = append(dst, c)
			pos++
		}
	}

	return dst, false
}

// unhex4 decodes the four hex digits at the start of b.
func unhex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}

	var r rune
	for _, c := range b[:4] {
		d, ok := hexDigit(c)
		if !ok {
			return 0, false
		}
		r = r<<4 | rune(d)
	}

	return r, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// appendCodePoint encodes r into a local buffer and appends only the bytes
// produced. Code points that have no UTF-8 encoding, such as lone surrogates,
// are rejected.
func appendCodePoint(dst []byte, r rune) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)

	return append(dst, buf[:n]...), true
}

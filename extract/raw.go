package extract

// Raw copies the value's source bytes unchanged.
//
// A value opening with '[', '{' or '"' is copied, opener included, until the
// matching closer brings the nesting balance back to zero. Inside a quoted
// value a '"' preceded by a single backslash does not close it; only one byte
// of lookback is used, so the escape handling is not a full JSON parser. Any
// other value is copied up to the first ',' or '}'. Values left open by the
// end of the row are copied up to the row end.
type Raw struct{}

var _ Appender = Raw{}

// Append appends the raw value to dst. It never fails.
func (Raw) Append(dst []byte, value []byte) ([]byte, bool) {
	if len(value) == 0 {
		return dst, true
	}

	openChar := value[0]
	var closeChar byte
	switch openChar {
	case '[':
		closeChar = ']'
	case '{':
		closeChar = '}'
	case '"':
		closeChar = '"'
	}

	if closeChar == 0 {
		n := 0
		for n < len(value) && value[n] != ',' && value[n] != '}' {
			n++
		}

		return append(dst, value[:n]...), true
	}

	balance := 1
	var lastChar byte
	n := 1
	for ; n < len(value) && balance > 0; n++ {
		c := value[n]
		if openChar == '"' && c == '"' {
			if lastChar != '\\' {
				n++
				break
			}
		} else {
			if c == openChar {
				balance++
			}
			if c == closeChar {
				balance--
			}
		}

		if lastChar == '\\' {
			lastChar = 0
		} else {
			lastChar = c
		}
	}

	return append(dst, value[:n]...), true
}

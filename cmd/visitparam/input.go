package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/visitparam/column"
)

const (
	formatAuto  = "auto"
	formatLines = "lines"
	formatBlock = "block"
)

// readInput reads path, or r when path is "-" or empty.
func readInput(path string, r io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(r)
	}

	data, err := os.ReadFile(path) //nolint:gosec // user supplied input path
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

// isBlock reports whether data starts with a valid column block header.
func isBlock(data []byte) bool {
	if len(data) < column.HeaderSize {
		return false
	}
	var h column.BlockHeader

	return h.Parse(data[:column.HeaderSize]) == nil
}

// parseColumn turns raw input into a column according to format.
func parseColumn(data []byte, format string) (*column.Strings, error) {
	switch format {
	case formatBlock:
		return column.Decode(data)
	case formatLines:
		return splitLines(data), nil
	case formatAuto, "":
		if isBlock(data) {
			return column.Decode(data)
		}

		return splitLines(data), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// splitLines makes one row per line. Line endings, including a trailing
// carriage return, are not part of the row and a final newline adds no row.
func splitLines(data []byte) *column.Strings {
	col := &column.Strings{
		Data:    make([]byte, 0, len(data)),
		Offsets: make([]uint64, 0, bytes.Count(data, []byte{'\n'})+1),
	}
	for len(data) > 0 {
		line := data
		next := len(data)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			next = i + 1
		}
		col.Append(bytes.TrimSuffix(line, []byte{'\r'}))
		data = data[next:]
	}

	return col
}

package column

import (
	"fmt"
	"sort"

	"github.com/arloliu/visitparam/errs"
)

// Strings is a string column: concatenated row bytes plus cumulative row end offsets.
//
// The engine only reads Data and Offsets. Callers must not modify them while a
// call that borrows the column is running.
type Strings struct {
	Data    []byte
	Offsets []uint64
	// Terminated marks columns whose rows each end with one zero byte.
	Terminated bool
}

// FromStrings builds an unterminated column from rows.
func FromStrings(rows ...string) *Strings {
	size := 0
	for _, r := range rows {
		size += len(r)
	}

	col := &Strings{
		Data:    make([]byte, 0, size),
		Offsets: make([]uint64, 0, len(rows)),
	}
	for _, r := range rows {
		col.Append([]byte(r))
	}

	return col
}

// FromBytes builds an unterminated column from rows.
func FromBytes(rows [][]byte) *Strings {
	size := 0
	for _, r := range rows {
		size += len(r)
	}

	col := &Strings{
		Data:    make([]byte, 0, size),
		Offsets: make([]uint64, 0, len(rows)),
	}
	for _, r := range rows {
		col.Append(r)
	}

	return col
}

// Append adds one row. When the column is Terminated the zero byte is added too.
func (s *Strings) Append(row []byte) {
	s.Data = append(s.Data, row...)
	if s.Terminated {
		s.Data = append(s.Data, 0)
	}
	s.Offsets = append(s.Offsets, uint64(len(s.Data)))
}

// Len returns the number of rows.
func (s *Strings) Len() int {
	return len(s.Offsets)
}

// Begin returns the start offset of row i.
func (s *Strings) Begin(i int) int {
	if i == 0 {
		return 0
	}

	return int(s.Offsets[i-1]) //nolint:gosec
}

// End returns the end offset (exclusive) of row i, including any terminator.
func (s *Strings) End(i int) int {
	return int(s.Offsets[i]) //nolint:gosec
}

// Row returns the bytes of row i without the terminator.
//
// The returned slice aliases Data and is capacity-clipped to the row.
func (s *Strings) Row(i int) []byte {
	begin, end := s.Begin(i), s.End(i)
	if s.Terminated && end > begin {
		end--
	}

	return s.Data[begin:end:end]
}

// String returns row i as a string.
func (s *Strings) String(i int) string {
	return string(s.Row(i))
}

// Rows returns a copy of every row as a string.
func (s *Strings) Rows() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.String(i)
	}

	return out
}

// RowOf returns the index of the row containing byte position pos, i.e. the
// smallest i with pos < Offsets[i]. It returns Len() when pos is past the last row.
func (s *Strings) RowOf(pos int) int {
	return sort.Search(len(s.Offsets), func(i int) bool {
		return uint64(pos) < s.Offsets[i] //nolint:gosec
	})
}

// Slice returns rows [from, to) as a new column sharing Data with s.
//
// The offsets are rebased so the result is a standalone column.
func (s *Strings) Slice(from, to int) *Strings {
	base := s.Begin(from)
	end := base
	if to > from {
		end = s.End(to - 1)
	}

	offsets := make([]uint64, to-from)
	for i := range offsets {
		offsets[i] = s.Offsets[from+i] - uint64(base) //nolint:gosec
	}

	return &Strings{
		Data:       s.Data[base:end:end],
		Offsets:    offsets,
		Terminated: s.Terminated,
	}
}

// Validate checks that offsets are non-decreasing and within Data, and that a
// Terminated column has a zero byte closing every row.
func (s *Strings) Validate() error {
	prev := uint64(0)
	for i, off := range s.Offsets {
		if off < prev {
			return fmt.Errorf("%w: offset %d at row %d is below previous offset %d", errs.ErrInvalidOffsets, off, i, prev)
		}
		if off > uint64(len(s.Data)) {
			return fmt.Errorf("%w: offset %d at row %d exceeds data size %d", errs.ErrInvalidOffsets, off, i, len(s.Data))
		}
		if s.Terminated && (off == prev || s.Data[off-1] != 0) {
			return fmt.Errorf("%w: row %d is not zero-terminated", errs.ErrInvalidOffsets, i)
		}
		prev = off
	}

	return nil
}

// Concat joins columns of the same kind into one.
func Concat(parts ...*Strings) *Strings {
	size, rows := 0, 0
	for _, p := range parts {
		size += len(p.Data)
		rows += p.Len()
	}

	out := &Strings{
		Data:    make([]byte, 0, size),
		Offsets: make([]uint64, 0, rows),
	}
	for _, p := range parts {
		out.Terminated = out.Terminated || p.Terminated
		base := uint64(len(out.Data))
		// Only the bytes covered by offsets belong to the column.
		used := 0
		if p.Len() > 0 {
			used = p.End(p.Len() - 1)
		}
		out.Data = append(out.Data, p.Data[:used]...)
		for _, off := range p.Offsets {
			out.Offsets = append(out.Offsets, base+off)
		}
	}

	return out
}

package batch

import (
	"github.com/arloliu/visitparam/column"
	"github.com/arloliu/visitparam/errs"
	"github.com/arloliu/visitparam/extract"
	"github.com/arloliu/visitparam/internal/search"
)

// StringReserveDivisor sizes the initial string output buffer as a fraction of
// the input buffer.
const StringReserveDivisor = 5

// scan finds the first occurrence of key's pattern in every row of col.
//
// Rows are reported in increasing order, each exactly once: absent for rows
// without a usable match, found with the value span otherwise. The span ends
// at the row end, before the zero terminator of a Terminated column, and is
// capacity-clipped.
func scan(col *column.Strings, key string, absent func(row int), found func(row int, value []byte)) {
	pattern := extract.Pattern(key)
	used := 0
	if col.Len() > 0 {
		used = col.End(col.Len() - 1)
	}

	scanner := search.NewScanner(search.NewSearcher(pattern), col.Data[:used:used])
	cur := column.NewCursor(col)

	for !cur.Done() {
		pos, ok := scanner.Next()
		if !ok {
			break
		}

		cur.Advance(pos, absent)
		if cur.Done() {
			break
		}

		row, end := cur.Row(), cur.End()
		valueEnd := end
		if col.Terminated {
			// The zero terminator is not row content.
			valueEnd--
		}
		if valueStart := pos + len(pattern); valueStart < valueEnd {
			found(row, col.Data[valueStart:valueEnd:valueEnd])
		} else {
			absent(row)
		}

		// Later matches in the same row are ignored.
		scanner.Seek(end)
		cur.Next()
	}

	cur.Rest(absent)
}

// VectorConstant extracts key from every row of col into a new slice.
func VectorConstant[T any](col *column.Strings, key string, ex extract.Fixed[T]) []T {
	res := make([]T, col.Len())
	VectorConstantInto(col, key, ex, res)

	return res
}

// VectorConstantInto extracts key from every row of col into res, which must
// hold at least col.Len() elements. Every slot up to col.Len() is written.
func VectorConstantInto[T any](col *column.Strings, key string, ex extract.Fixed[T], res []T) {
	res = res[:col.Len()]

	var zero T
	scan(col, key,
		func(row int) { res[row] = zero },
		func(row int, value []byte) { res[row] = ex.Extract(value) },
	)
}

// VectorConstantString extracts key from every row of col into a terminated
// string column. Failed rows are empty.
func VectorConstantString(col *column.Strings, key string, ex extract.Appender) *column.Strings {
	b := column.NewBuilder(col.Len(), len(col.Data)/StringReserveDivisor)

	scan(col, key,
		func(int) { b.EmptyRow() },
		func(_ int, value []byte) {
			b.Mark()
			out, ok := ex.Append(b.Bytes(), value)
			b.SetBytes(out)
			if !ok {
				b.Rollback()
			}
			b.EndRow()
		},
	)

	return b.Finish()
}

// VectorVector rejects a per-row key for a text column.
func VectorVector(_ *column.Strings, _ *column.Strings) error {
	return errs.ErrNonConstantKey
}

// ConstantVector rejects a per-row key for constant text.
func ConstantVector(_ []byte, _ *column.Strings) error {
	return errs.ErrNonConstantKey
}

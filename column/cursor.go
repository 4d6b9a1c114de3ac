package column

// Cursor tracks the current row while positions inside Data are visited in
// increasing order. It never moves backwards; a new scan needs a new Cursor.
type Cursor struct {
	offsets []uint64
	row     int
}

// NewCursor returns a cursor positioned on row 0 of col.
func NewCursor(col *Strings) Cursor {
	return Cursor{offsets: col.Offsets}
}

// Row returns the current row index. It equals the row count once every row
// has been passed.
func (c *Cursor) Row() int {
	return c.row
}

// Done reports whether the cursor moved past the last row.
func (c *Cursor) Done() bool {
	return c.row >= len(c.offsets)
}

// Begin returns the start offset of the current row.
func (c *Cursor) Begin() int {
	if c.row == 0 {
		return 0
	}

	return int(c.offsets[c.row-1]) //nolint:gosec
}

// End returns the end offset of the current row. It must not be called once Done.
func (c *Cursor) End() int {
	return int(c.offsets[c.row]) //nolint:gosec
}

// Advance moves the cursor to the row containing pos, calling skip for every
// row it passes on the way. Rows whose end is at or before pos are passed.
// Positions at or past the last offset leave the cursor Done.
func (c *Cursor) Advance(pos int, skip func(row int)) {
	for c.row < len(c.offsets) && c.offsets[c.row] <= uint64(pos) { //nolint:gosec
		if skip != nil {
			skip(c.row)
		}
		c.row++
	}
}

// Next moves past the current row.
func (c *Cursor) Next() {
	if c.row < len(c.offsets) {
		c.row++
	}
}

// Rest calls skip for the current row and every row after it, leaving the
// cursor Done.
func (c *Cursor) Rest(skip func(row int)) {
	for ; c.row < len(c.offsets); c.row++ {
		if skip != nil {
			skip(c.row)
		}
	}
}

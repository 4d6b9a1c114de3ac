package column

import "github.com/arloliu/visitparam/internal/pool"

// Builder accumulates a Terminated output column row by row.
//
// Row bytes are appended through Bytes/SetBytes or AppendBytes; EndRow closes
// the row with a zero byte and records its offset. Rollback discards whatever
// the current row appended since the last Mark.
type Builder struct {
	buf     *pool.ByteBuffer
	offsets []uint64
	mark    int
}

// NewBuilder creates a builder for rows rows with dataHint bytes reserved.
func NewBuilder(rows int, dataHint int) *Builder {
	return &Builder{
		buf:     pool.NewByteBuffer(dataHint + rows),
		offsets: make([]uint64, 0, rows),
	}
}

// Bytes returns the data written so far. Extractors append to it and hand the
// result back with SetBytes.
func (b *Builder) Bytes() []byte {
	return b.buf.B
}

// SetBytes replaces the data with buf, which must extend the slice returned by Bytes.
func (b *Builder) SetBytes(buf []byte) {
	b.buf.B = buf
}

// AppendBytes appends p to the current row.
func (b *Builder) AppendBytes(p []byte) {
	b.buf.MustWrite(p)
}

// Mark remembers the current data length as the rollback point.
func (b *Builder) Mark() {
	b.mark = b.buf.Len()
}

// Rollback truncates the data back to the last Mark.
func (b *Builder) Rollback() {
	b.buf.Truncate(b.mark)
}

// EndRow terminates the current row and starts the next one.
func (b *Builder) EndRow() {
	_ = b.buf.WriteByte(0)
	b.offsets = append(b.offsets, uint64(b.buf.Len()))
	b.mark = b.buf.Len()
}

// EmptyRow adds a row with no content.
func (b *Builder) EmptyRow() {
	b.EndRow()
}

// Rows returns the number of completed rows.
func (b *Builder) Rows() int {
	return len(b.offsets)
}

// Finish returns the built column. The builder must not be used afterwards.
func (b *Builder) Finish() *Strings {
	col := &Strings{
		Data:       b.buf.Bytes(),
		Offsets:    b.offsets,
		Terminated: true,
	}
	b.buf = nil
	b.offsets = nil

	return col
}

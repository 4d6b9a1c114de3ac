// Package column holds the string column representation shared by the
// extraction engine: one immutable byte buffer with every row concatenated and
// a table of cumulative row end offsets.
//
// # Layout
//
// For rows "ab", "", "cde":
//
//	Data:    a b c d e
//	Offsets: 2 2 5
//
// Row i spans Data[Offsets[i-1]:Offsets[i]] with Offsets[-1] taken as 0.
//
// Output columns produced by string extractors are Terminated: every row is
// followed by a single zero byte which is counted in its offset, so empty
// results still occupy one byte and row boundaries stay unambiguous:
//
//	Data:    x 0 0 y z 0
//	Offsets: 2 3 6
//
// # Row cursor
//
// Cursor walks rows forward only, which is how the batch drivers classify the
// left-to-right stream of key matches into rows.
//
// # Blocks
//
// Encode and Decode convert a Strings column to and from a self-describing
// block with a 32-byte header, an optionally compressed payload and an xxHash64
// checksum. Blocks are what the visitparam command reads and writes.
package column

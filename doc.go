// Package visitparam extracts single fields from flat JSON-like text without
// parsing it.
//
// Each extraction looks for the first occurrence of the byte pattern `"key":`
// in every row of a string column (or in one constant string) and decodes the
// value that follows as one of seven kinds: presence, unsigned or signed
// integer, float, boolean, raw value bytes or unescaped string. Rows where the
// key is missing, or where the value cannot be decoded, produce the kind's
// default value (0, false or an empty string).
//
// The search runs over the whole column buffer at once, so the cost is close to
// one pass over the data regardless of the number of rows. Only the first
// occurrence per row counts, and a match whose value would start in the next
// row is treated as absent.
//
// # Basic Usage
//
//	col := column.FromStrings(`{"id":7,"name":"a"}`, `{"name":"b"}`)
//	ids, err := visitparam.ExtractInt(col, "id") // []int64{7, 0}
//
// The Engine type gives access to constant arguments, logging and parallel
// extraction of large columns:
//
//	engine, _ := visitparam.New(visitparam.WithParallelism(4))
//	res, err := engine.Extract(visitparam.KindString, visitparam.Column(col), visitparam.Const("name"))
//
// # Limitations
//
// Keys are matched byte for byte, nesting is not understood, and a key that
// appears inside a string value also matches. The key must be a constant.
package visitparam

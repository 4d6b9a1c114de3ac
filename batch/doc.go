// Package batch wires the key locator, the row cursor and an extractor into
// the column-level entry points.
//
// The searched text and the key can each be a constant or a column:
//
//	VectorConstant*    text column, constant key: the batch path
//	ConstantConstant*  constant text, constant key: the scalar path
//	VectorVector       per-row key: rejected with errs.ErrNonConstantKey
//	ConstantVector     per-row key: rejected with errs.ErrNonConstantKey
//
// Rows without the key, rows where the match runs into the row boundary and
// rows whose value does not parse all get the sentinel: the zero value for
// fixed-width results and an empty string for string results. Only the first
// match in a row is considered.
package batch

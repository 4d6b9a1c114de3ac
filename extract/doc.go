// Package extract implements the value extractors run on the bytes that follow
// a matched `"<key>":` pattern.
//
// Every extractor receives the value span: a slice that starts right after
// the colon and ends at the end of the row it was found in. Spans are
// capacity-clipped, so an extractor can never observe bytes of the next row.
//
// Fixed-width extractors implement Fixed[T]:
//
//	Has         always true; only the key's presence matters
//	Numeric[T]  integer or float text, optionally inside double quotes
//	Bool        true only for a bare `true` literal
//
// Variable-length extractors implement Appender and append to the output buffer:
//
//	Raw         the value's source bytes, delimited by bracket balance
//	String      a JSON string with escape sequences decoded
//
// None of them validate JSON; they parse just enough to find their value and
// fall back to the zero value (or to appending nothing) when they cannot.
package extract

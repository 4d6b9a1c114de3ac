// Package errs defines the sentinel errors returned by visitparam packages.
//
// Callers match them with errors.Is; packages wrap them with additional
// context using fmt.Errorf and the %w verb.
package errs

import "errors"

// Configuration errors. These abort a call before any scanning happens.
var (
	// ErrNonConstantKey is returned when the key argument is a per-row column.
	ErrNonConstantKey = errors.New("functions 'visitParamHas' and 'visitParamExtract*' don't support non-constant needle argument")
	// ErrUnknownKind is returned for an extraction kind outside the supported set.
	ErrUnknownKind = errors.New("unknown extraction kind")
	// ErrNilArgument is returned when an argument carries neither a constant nor a column.
	ErrNilArgument = errors.New("argument has no value")
)

// Column errors.
var (
	ErrInvalidOffsets       = errors.New("invalid row offsets")
	ErrInvalidHeaderSize    = errors.New("invalid column block header size")
	ErrInvalidMagic         = errors.New("invalid column block magic number")
	ErrInvalidHeaderFlags   = errors.New("invalid column block header flags")
	ErrInvalidPayloadSize   = errors.New("invalid column block payload size")
	ErrChecksumMismatch     = errors.New("column block checksum mismatch")
	ErrUnsupportedCodec     = errors.New("unsupported compression type")
	ErrRowCountOutOfRange   = errors.New("row count out of range")
	ErrColumnTooLarge       = errors.New("column exceeds maximum block size")
	ErrInvalidOffsetPayload = errors.New("invalid offsets payload")
)

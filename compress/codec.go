package compress

import (
	"fmt"

	"github.com/arloliu/visitparam/errs"
	"github.com/arloliu/visitparam/format"
)

// Compressor compresses a column block payload.
//
// The returned slice is owned by the caller; the input is never modified. The
// NoOp codec returns its input unchanged, so callers that recycle the input
// buffer must copy the result first.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
//
// It returns an error when the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// sizedDecompressor is implemented by codecs that can decode into a buffer of
// known size. Implementations check size against what the compressed data can
// produce before allocating, since size comes from an untrusted header.
type sizedDecompressor interface {
	decompressSized(data []byte, size int) ([]byte, error)
}

// DecompressSized decompresses data whose decompressed length is known to be size.
//
// It returns an error if the decompressed payload does not have exactly size bytes.
func DecompressSized(d Decompressor, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if sd, ok := d.(sizedDecompressor); ok {
		out, err = sd.decompressSized(data, size)
	} else {
		out, err = d.Decompress(data)
	}
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, sizeMismatch("decompressed", len(out), size)
	}

	return out, nil
}

func sizeMismatch[N int | uint64](what string, got N, want int) error {
	return fmt.Errorf("%s %d bytes, expected %d: %w", what, got, want, errs.ErrInvalidPayloadSize)
}

// CompressionStats summarizes one compression operation.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCodec, compressionType)
}

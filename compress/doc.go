// Package compress provides the payload codecs used by visitparam column blocks.
//
// A column block stores its offsets and row bytes as one payload which can be
// compressed with one of the codecs below:
//   - None: payload stored as-is
//   - Zstd: best ratio, good for archived JSON-like text (klauspost/compress/zstd)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// Codecs are stateless values and safe for concurrent use. Encoders and decoders
// that benefit from reuse are kept in sync.Pools.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// When the uncompressed size is known, as it is for column blocks, callers
// should use DecompressSized which lets codecs allocate the output once.
//
// Build with the gozstd tag (and cgo enabled) to replace the pure Go Zstd
// implementation with the cgo binding in github.com/valyala/gozstd.
package compress

package column

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/visitparam/compress"
	"github.com/arloliu/visitparam/endian"
	"github.com/arloliu/visitparam/errs"
	"github.com/arloliu/visitparam/format"
	"github.com/arloliu/visitparam/internal/options"
	"github.com/arloliu/visitparam/internal/pool"
	"github.com/cespare/xxhash/v2"
)

const (
	HeaderSize = 32 // fixed block header size in bytes

	MagicBlockV1   = 0xEC10 // magic number of version 1 column blocks (bits 4-15)
	MagicMask      = 0xFFF0
	TerminatedMask = 0x0001 // rows carry a zero terminator
	EndiannessMask = 0x0002 // 0=little, 1=big
	ReservedMask   = 0x000C

	MaxBlockRows = math.MaxUint32
	MaxBlockSize = math.MaxUint32
)

// BlockHeader is the fixed 32-byte header of a column block.
//
//	offset  size  field
//	0       2     Flags (magic + options, always little-endian)
//	2       1     Compression
//	3       1     reserved, zero
//	4       4     RowCount
//	8       4     OffsetsSize (uncompressed varint offsets payload)
//	12      4     DataSize (uncompressed row bytes)
//	16      4     PayloadSize (bytes following the header)
//	20      4     reserved, zero
//	24      8     Checksum (xxHash64 of the uncompressed payload)
type BlockHeader struct {
	Flags       uint16
	Compression format.CompressionType
	RowCount    uint32
	OffsetsSize uint32
	DataSize    uint32
	PayloadSize uint32
	Checksum    uint64
}

// IsBigEndian reports whether the numeric header fields are big-endian.
func (h *BlockHeader) IsBigEndian() bool {
	return h.Flags&EndiannessMask != 0
}

// IsTerminated reports whether the stored rows carry zero terminators.
func (h *BlockHeader) IsTerminated() bool {
	return h.Flags&TerminatedMask != 0
}

// GetEndianEngine returns the engine for the numeric header fields.
func (h *BlockHeader) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Bytes serializes the header.
func (h *BlockHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.GetEndianEngine()

	b[0] = byte(h.Flags)
	b[1] = byte(h.Flags >> 8)
	b[2] = byte(h.Compression)
	engine.PutUint32(b[4:8], h.RowCount)
	engine.PutUint32(b[8:12], h.OffsetsSize)
	engine.PutUint32(b[12:16], h.DataSize)
	engine.PutUint32(b[16:20], h.PayloadSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// Parse decodes the header from exactly HeaderSize bytes.
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flags = uint16(data[0]) | uint16(data[1])<<8
	if h.Flags&MagicMask != MagicBlockV1 {
		return errs.ErrInvalidMagic
	}
	if h.Flags&ReservedMask != 0 || data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	h.Compression = format.CompressionType(data[2])
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedCodec, data[2])
	}

	engine := h.GetEndianEngine()
	h.RowCount = engine.Uint32(data[4:8])
	h.OffsetsSize = engine.Uint32(data[8:12])
	h.DataSize = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// BlockOption configures Encode.
type BlockOption = options.Option[*blockConfig]

type blockConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(c format.CompressionType) BlockOption {
	return options.New(func(cfg *blockConfig) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCodec, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian writes header fields little-endian (the default).
func WithLittleEndian() BlockOption {
	return options.NoError(func(cfg *blockConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes header fields big-endian.
func WithBigEndian() BlockOption {
	return options.NoError(func(cfg *blockConfig) {
		cfg.bigEndian = true
	})
}

// Encode serializes col into a column block.
//
// Only the bytes covered by the offsets are stored. The column is validated first.
func Encode(col *Strings, opts ...BlockOption) ([]byte, compress.CompressionStats, error) {
	cfg := &blockConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, compress.CompressionStats{}, err
	}
	if err := col.Validate(); err != nil {
		return nil, compress.CompressionStats{}, err
	}
	if uint64(col.Len()) > MaxBlockRows {
		return nil, compress.CompressionStats{}, errs.ErrRowCountOutOfRange
	}

	dataSize := 0
	if col.Len() > 0 {
		dataSize = col.End(col.Len() - 1)
	}

	scratch := pool.GetScratch()
	defer pool.PutScratch(scratch)

	scratch.Grow(col.Len()*binary.MaxVarintLen32 + dataSize)
	prev := uint64(0)
	for _, off := range col.Offsets {
		scratch.B = binary.AppendUvarint(scratch.B, off-prev)
		prev = off
	}
	offsetsSize := scratch.Len()
	scratch.MustWrite(col.Data[:dataSize])

	if uint64(offsetsSize)+uint64(dataSize) > MaxBlockSize {
		return nil, compress.CompressionStats{}, errs.ErrColumnTooLarge
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}
	packed, err := codec.Compress(scratch.Bytes())
	if err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("failed to compress column payload: %w", err)
	}
	if uint64(len(packed)) > MaxBlockSize {
		return nil, compress.CompressionStats{}, errs.ErrColumnTooLarge
	}

	header := BlockHeader{
		Flags:       MagicBlockV1,
		Compression: cfg.compression,
		RowCount:    uint32(col.Len()),
		OffsetsSize: uint32(offsetsSize),
		DataSize:    uint32(dataSize),
		PayloadSize: uint32(len(packed)),
		Checksum:    xxhash.Sum64(scratch.Bytes()),
	}
	if cfg.bigEndian {
		header.Flags |= EndiannessMask
	}
	if col.Terminated {
		header.Flags |= TerminatedMask
	}

	block := make([]byte, 0, HeaderSize+len(packed))
	block = append(block, header.Bytes()...)
	block = append(block, packed...)

	stats := compress.CompressionStats{
		Algorithm:      cfg.compression,
		OriginalSize:   int64(scratch.Len()),
		CompressedSize: int64(len(packed)),
	}

	return block, stats, nil
}

// Decode parses a column block produced by Encode.
//
// The returned column owns its memory; it does not alias block.
func Decode(block []byte) (*Strings, error) {
	if len(block) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var header BlockHeader
	if err := header.Parse(block[:HeaderSize]); err != nil {
		return nil, err
	}
	if uint64(len(block)-HeaderSize) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, block has %d", errs.ErrInvalidPayloadSize, header.PayloadSize, len(block)-HeaderSize)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	size := int(header.OffsetsSize) + int(header.DataSize)
	if header.Compression == format.CompressionNone && size != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: uncompressed payload of %d bytes, expected %d", errs.ErrInvalidPayloadSize, header.PayloadSize, size)
	}
	payload, err := compress.DecompressSized(codec, block[HeaderSize:], size)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress column payload: %w", err)
	}
	if xxhash.Sum64(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	offsets, err := decodeOffsets(payload[:header.OffsetsSize], int(header.RowCount))
	if err != nil {
		return nil, err
	}

	col := &Strings{
		// Copy so the result never aliases block through the NoOp codec.
		Data:       append([]byte(nil), payload[header.OffsetsSize:]...),
		Offsets:    offsets,
		Terminated: header.IsTerminated(),
	}
	if col.Len() > 0 && col.End(col.Len()-1) != len(col.Data) {
		return nil, fmt.Errorf("%w: offsets cover %d of %d data bytes", errs.ErrInvalidOffsets, col.End(col.Len()-1), len(col.Data))
	}
	if col.Len() == 0 && len(col.Data) != 0 {
		return nil, fmt.Errorf("%w: data without rows", errs.ErrInvalidOffsets)
	}
	if err := col.Validate(); err != nil {
		return nil, err
	}

	return col, nil
}

func decodeOffsets(payload []byte, rows int) ([]uint64, error) {
	if rows > len(payload) {
		// Every offset takes at least one byte.
		return nil, errs.ErrInvalidOffsetPayload
	}

	offsets := make([]uint64, rows)
	pos := 0
	prev := uint64(0)
	for i := range offsets {
		delta, n := binary.Uvarint(payload[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad varint at row %d", errs.ErrInvalidOffsetPayload, i)
		}
		pos += n
		prev += delta
		offsets[i] = prev
	}
	if pos != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidOffsetPayload, len(payload)-pos)
	}

	return offsets, nil
}

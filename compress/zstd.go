package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// JSON-like rows repeat their keys on every line, which Zstd exploits well;
// it is the default codec for column blocks.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// frameCapacity returns how many bytes to reserve for decoding the zstd frame
// in data into exactly size bytes. A frame that declares a different content
// size is rejected; a frame without one gets no reservation.
func frameCapacity(data []byte, size int) (int, error) {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return 0, fmt.Errorf("zstd frame header: %w", err)
	}
	if !h.HasFCS {
		return 0, nil
	}
	if h.FrameContentSize != uint64(size) { //nolint:gosec
		return 0, sizeMismatch("zstd frame holds", h.FrameContentSize, size)
	}

	return size, nil
}

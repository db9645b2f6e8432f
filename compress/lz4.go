package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// compressorPool reuses lz4.Compressor values across calls. The type carries
// a match-finder hash table that's wasteful to reallocate on every
// Compress call.
var compressorPool = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

// LZ4Compressor sits between S2 and Zstd on the speed/ratio tradeoff: faster
// than Zstd, denser than S2, for outer compression of already block-encoded
// payloads.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress runs LZ4 block compression over data using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	comp, _ := compressorPool.Get().(*lz4.Compressor)
	defer compressorPool.Put(comp)

	n, err := comp.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// maxDecompressedSize caps how far Decompress will grow its scratch buffer
// while probing for the decompressed size, guarding against unbounded
// allocation from corrupted or adversarial input.
const maxDecompressedSize = 128 * 1024 * 1024

// Decompress restores data produced by Compress. LZ4's block format doesn't
// carry the decompressed size, so this grows its destination buffer
// geometrically (starting at 4x the compressed size, a typical ratio for
// this package's inputs) and retries until UncompressBlock stops reporting
// a too-small buffer or the size cap is hit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= maxDecompressedSize; size *= 2 {
		dst := make([]byte, size)

		n, err := lz4.UncompressBlock(data, dst)
		if err == nil {
			return dst[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

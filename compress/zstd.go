package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression for already-encoded vcodec
// payloads.
//
// This compressor favors compression ratio over speed, making it suited to:
//   - Cold storage and archival of encoded blocks
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Implemented with the pure-Go github.com/klauspost/compress/zstd package, so
// no cgo toolchain is required to build or run it.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdEncoders and zstdDecoders hold warmed-up encoder/decoder instances.
// zstd.Encoder and zstd.Decoder both carry internal scratch state that the
// klauspost/compress docs call out as worth reusing across calls rather than
// rebuilding per invocation.
var (
	zstdEncoders = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: building pooled zstd encoder: %v", err))
			}

			return enc
		},
	}
	zstdDecoders = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: building pooled zstd decoder: %v", err))
			}

			return dec
		},
	}
)

// Compress compresses data with a pooled, pre-warmed Zstandard encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress restores data produced by Compress, using a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoders.Get().(*zstd.Decoder)
	defer zstdDecoders.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: decompressing payload: %w", err)
	}

	return out, nil
}

package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is Snappy-compatible compression tuned for throughput over
// ratio — the cheapest outer stage to reach for when the encoded payload is
// being shipped somewhere latency-sensitive rather than archived.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns an S2 compressor with default settings.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress runs S2 block compression over data.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores data produced by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

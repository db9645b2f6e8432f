package main

import (
	"fmt"
	"math"
	"time"

	"github.com/nullstream/vcodec"
	"github.com/nullstream/vcodec/compress"
	"github.com/nullstream/vcodec/internal/pool"
)

// Result holds one variant's measurements for one series size.
type Result struct {
	Variant         string
	ValueCount      int
	RawBytes        int
	EncodedBytes    int
	CompressedBytes int // 0 if no outer compressor was requested
	EncodeDuration  time.Duration
	DecodeDuration  time.Duration
	RoundTripOK     bool
}

// BytesPerValue reports the average encoded size of a single float32.
func (r Result) BytesPerValue() float64 {
	if r.ValueCount == 0 {
		return 0
	}

	return float64(r.EncodedBytes) / float64(r.ValueCount)
}

// CompressionRatio reports encoded-or-compressed size over raw size.
func (r Result) CompressionRatio() float64 {
	size := r.EncodedBytes
	if r.CompressedBytes > 0 {
		size = r.CompressedBytes
	}

	if r.RawBytes == 0 {
		return 0
	}

	return float64(size) / float64(r.RawBytes)
}

// Measure encodes and decodes values with both codec variants, verifying
// round-trip correctness, and optionally runs an outer compressor over the
// encoded bytes. codec may be nil to skip the outer-compression stage.
func Measure(values []float32, codec compress.Codec) ([]Result, error) {
	variants := []struct {
		name   string
		encode func([]float32, []byte) int
		decode func([]byte, []float32)
	}{
		{"full", vcodec.Encode, vcodec.Decode},
		{"quick", vcodec.EncodeQuick, vcodec.DecodeQuick},
	}

	results := make([]Result, 0, len(variants))

	for _, v := range variants {
		buf := make([]byte, scratchBufferSize(len(values)))

		start := time.Now()
		n := v.encode(values, buf)
		encodeDur := time.Since(start)

		got, cleanup := pool.GetFloat32Slice(len(values))

		start = time.Now()
		v.decode(buf[:n], got)
		decodeDur := time.Since(start)

		ok := roundTripMatches(values, got)
		cleanup()

		res := Result{
			Variant:        v.name,
			ValueCount:     len(values),
			RawBytes:       len(values) * 4,
			EncodedBytes:   n,
			EncodeDuration: encodeDur,
			DecodeDuration: decodeDur,
			RoundTripOK:    ok,
		}

		if codec != nil {
			compressed, err := codec.Compress(buf[:n])
			if err != nil {
				return nil, fmt.Errorf("compressing %s-encoded payload: %w", v.name, err)
			}
			res.CompressedBytes = len(compressed)
		}

		results = append(results, res)
	}

	return results, nil
}

// scratchBufferSize sizes the encode scratch buffer generously enough for
// any value count, including ones that aren't a multiple of 8 — see
// DESIGN.md's note on vcodec.UpperBound under-counting header bytes for
// such counts. -sizes accepts arbitrary counts, so this tool can't rely on
// vcodec.UpperBound alone without risking a slice-bounds panic on a
// non-block-aligned -sizes value.
func scratchBufferSize(n int) int {
	blocks := (n + 7) / 8

	return 4*blocks + 4*n
}

func roundTripMatches(want, got []float32) bool {
	if len(want) != len(got) {
		return false
	}

	for i := range want {
		if math.Float32bits(want[i]) != math.Float32bits(got[i]) {
			return false
		}
	}

	return true
}

// Package checked provides bounds-checked variants of the root package's
// decoders. The core codec's contract is deliberately unchecked: malformed
// or truncated input produces undefined results rather than an error, to
// keep the hot path allocation-free and branch-light. This package re-runs
// the same block loop but validates, before each lane read, that enough
// bytes remain for the computed payload width, returning a descriptive
// error instead of reading out of bounds.
//
// The wire format and the unchecked functions' behavior are unchanged —
// this package is purely additive.
package checked

import (
	"fmt"
	"math"

	"github.com/nullstream/vcodec/internal/header"
	"github.com/nullstream/vcodec/internal/lane"
	"github.com/nullstream/vcodec/internal/predictor"
)

const laneCount = 8

// Option configures optional checked-decode behavior. Applying an option
// cannot fail, so this is a plain mutator, not something that can itself
// error.
type Option func(*config)

type config struct {
	rejectTrailingBytes bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRejectTrailingBytes makes Decode/DecodeQuick fail when data has bytes
// left over after the last block's payload, instead of silently ignoring
// them.
func WithRejectTrailingBytes(reject bool) Option {
	return func(c *config) { c.rejectTrailingBytes = reject }
}

func numBlocks(n int) int {
	return (n + laneCount - 1) / laneCount
}

func headerAreaSize(n int) int {
	return 4 * numBlocks(n)
}

// Decode is the bounds-checked counterpart of vcodec.Decode. It reconstructs
// len(out) values from data, which must have been produced by vcodec.Encode
// with the same value count, returning an error instead of panicking or
// reading out of bounds on malformed input.
func Decode(data []byte, out []float32, opts ...Option) error {
	return decodeChecked(data, out, true, opts...)
}

// DecodeQuick is the bounds-checked counterpart of vcodec.DecodeQuick.
func DecodeQuick(data []byte, out []float32, opts ...Option) error {
	return decodeChecked(data, out, false, opts...)
}

func decodeChecked(data []byte, out []float32, usePredictor bool, opts ...Option) error {
	cfg := newConfig(opts...)

	n := len(out)
	blocks := numBlocks(n)
	headerBytes := headerAreaSize(n)

	if len(data) < headerBytes {
		return fmt.Errorf("checked: truncated header: need %d bytes, have %d", headerBytes, len(data))
	}

	var prior [laneCount]uint32
	var table predictor.Table
	var lanes [laneCount]predictor.LaneState

	cursor := headerBytes

	for b := 0; b < blocks; b++ {
		word := header.Read(data, b*4)
		lzArr, tzArr := header.Unpack(word)

		for k := 0; k < laneCount; k++ {
			width := lane.DecodeWidth(lzArr[k])

			if cursor+width > len(data) {
				return fmt.Errorf("checked: truncated payload at block %d lane %d: need %d bytes at offset %d, have %d bytes total",
					b, k, width, cursor, len(data))
			}

			var shifted uint32
			for byteIdx := 0; byteIdx < width; byteIdx++ {
				shifted |= uint32(data[cursor+byteIdx]) << (8 * byteIdx)
			}
			cursor += width

			resid := shifted << (8 * uint(tzArr[k]))

			var delta uint32
			if usePredictor {
				xp := lanes[k].Peek()
				delta = resid ^ xp
				table.Commit(&lanes[k], delta)
			} else {
				delta = resid
			}

			raw := delta + prior[k]
			prior[k] = raw

			idx := b*laneCount + k
			if idx < n {
				out[idx] = math.Float32frombits(raw)
			}
		}
	}

	if cfg.rejectTrailingBytes && cursor != len(data) {
		return fmt.Errorf("checked: %d trailing byte(s) after decoding %d value(s)", len(data)-cursor, n)
	}

	return nil
}

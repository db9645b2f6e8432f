package vcodec

import (
	"math"

	"github.com/nullstream/vcodec/internal/header"
	"github.com/nullstream/vcodec/internal/lane"
	"github.com/nullstream/vcodec/internal/predictor"
)

// laneCount is the fixed number of values processed per block.
const laneCount = 8

// numBlocks returns the number of 8-value blocks needed for n values,
// zero-padding the last block if n is not a multiple of laneCount.
func numBlocks(n int) int {
	return (n + laneCount - 1) / laneCount
}

// headerAreaSize returns the byte size of the contiguous run of 4-byte
// block headers at the front of the output — one full header per block,
// laid out with no gaps so the payload area starts immediately after.
func headerAreaSize(n int) int {
	return 4 * numBlocks(n)
}

// UpperBound returns the worst-case number of bytes Encode or EncodeQuick
// can write for valueCount input values. Callers must size their output
// buffer to at least this before calling either encoder.
func UpperBound(valueCount int) int {
	return (valueCount+1)/2 + 4*valueCount
}

// blockState holds the per-lane predictor state shared by a full encode or
// decode pass: the previous block's reconstructed values (for the delta
// stage) and, when usePredictor is set, the xor-stage table and per-lane
// state (for the full variant).
type blockState struct {
	prior        [laneCount]uint32
	table        predictor.Table
	lanes        [laneCount]predictor.LaneState
	usePredictor bool
}

func (s *blockState) forwardResidual(laneIdx int, delta uint32) uint32 {
	if !s.usePredictor {
		return delta
	}

	xp := s.lanes[laneIdx].Peek()
	resid := delta ^ xp
	s.table.Commit(&s.lanes[laneIdx], delta)

	return resid
}

func (s *blockState) inverseResidual(laneIdx int, resid uint32) uint32 {
	if !s.usePredictor {
		return resid
	}

	xp := s.lanes[laneIdx].Peek()
	delta := resid ^ xp
	s.table.Commit(&s.lanes[laneIdx], delta)

	return delta
}

// encodeBlocks runs the shared block loop for Encode/EncodeQuick. out must
// already be sized to at least UpperBound(len(values)).
func encodeBlocks(values []float32, out []byte, usePredictor bool) int {
	n := len(values)
	blocks := numBlocks(n)
	state := &blockState{usePredictor: usePredictor}
	cursor := headerAreaSize(n)

	for b := 0; b < blocks; b++ {
		var lzArr, tzArr [laneCount]uint8

		for k := 0; k < laneCount; k++ {
			idx := b*laneCount + k

			if idx >= n {
				// Zero-padded tail lane: this block is the last one, so
				// nothing downstream ever reads this lane's predictor
				// state again. Force a zero-width entry instead of
				// running the real pipeline, whose delta would inherit
				// whatever large value the previous block left behind
				// in state.prior[k] — that would blow past UpperBound's
				// N-lane (not block-lane) payload budget for any N that
				// isn't a multiple of laneCount.
				lzArr[k] = 3
				tzArr[k] = 3

				continue
			}

			raw := math.Float32bits(values[idx])
			delta := raw - state.prior[k]
			state.prior[k] = raw

			resid := state.forwardResidual(k, delta)

			tz, shifted := lane.StripTrailingZeroBytes(resid)
			lz, width := lane.WidthAndLZ(shifted)
			tzArr[k] = tz
			lzArr[k] = lz

			for byteIdx := 0; byteIdx < width; byteIdx++ {
				out[cursor+byteIdx] = byte(shifted >> (8 * byteIdx))
			}
			cursor += width
		}

		header.Write(out, b*4, header.Pack(lzArr, tzArr))
	}

	return cursor
}

// decodeBlocks runs the shared block loop for Decode/DecodeQuick. data must
// hold a stream produced by the matching encoder (usePredictor must match).
func decodeBlocks(data []byte, out []float32, usePredictor bool) {
	n := len(out)
	blocks := numBlocks(n)
	state := &blockState{usePredictor: usePredictor}
	cursor := headerAreaSize(n)

	for b := 0; b < blocks; b++ {
		word := header.Read(data, b*4)
		lzArr, tzArr := header.Unpack(word)

		for k := 0; k < laneCount; k++ {
			width := lane.DecodeWidth(lzArr[k])

			var shifted uint32
			for byteIdx := 0; byteIdx < width; byteIdx++ {
				shifted |= uint32(data[cursor+byteIdx]) << (8 * byteIdx)
			}
			cursor += width

			resid := shifted << (8 * uint(tzArr[k]))
			delta := state.inverseResidual(k, resid)

			raw := delta + state.prior[k]
			state.prior[k] = raw

			idx := b*laneCount + k
			if idx < n {
				out[idx] = math.Float32frombits(raw)
			}
		}
	}
}

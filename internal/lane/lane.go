// Package lane implements the per-lane byte-length codec: counting
// trailing/leading zero bytes of a 32-bit residual, collapsing those counts
// into the 2-bit fields stored in a block header, and deriving the
// variable payload width they imply.
//
// Every function here is pure and stateless; a block's eight lanes are
// processed by calling these once per lane.
package lane

import "math/bits"

// StripTrailingZeroBytes counts the residual's trailing zero bytes (0..4,
// a fully-zero word counts as 4), collapses that count into the 2-bit
// stored tz field (collapsing 4 down to 3), and returns the residual
// shifted right by 8*tz — the "significant word" used by WidthAndLZ.
func StripTrailingZeroBytes(r uint32) (tz uint8, shifted uint32) {
	q := bits.TrailingZeros32(r) >> 3 // 0..4; TrailingZeros32(0) == 32
	tz = uint8(q - (q >> 2))          // collapses q==4 to 3, else unchanged
	shifted = r >> (8 * uint(tz))

	return tz, shifted
}

// WidthAndLZ counts the significant word's leading zero bytes (0..4),
// collapses that count into the 2-bit stored lz field (collapsing both 3
// and 4 to the symbol that decodes back to width 2 and 0 respectively),
// and returns the number of payload bytes to emit.
//
// raw lz | width | stored lz
//
//	0    |   4   |     0
//	1    |   3   |     1
//	2    |   2   |     2
//	3    |   2   |     2   (one codepoint lost, see DecodeWidth)
//	4    |   0   |     3
func WidthAndLZ(s uint32) (lz uint8, width int) {
	l := bits.LeadingZeros32(s) >> 3 // 0..4; LeadingZeros32(0) == 32

	width = 4 - l
	if l == 3 {
		width++
	}

	lz = uint8(l)
	if l > 2 {
		lz--
	}

	return lz, width
}

// DecodeWidth recovers the payload width from a block header's stored lz
// field. It is the exact inverse of the lz half of WidthAndLZ's encoding,
// including the lossy lz==2 collapse (raw lz of 2 and 3 both decode to
// width 2 — round-trip correctness only requires the encoder to have used
// the matching width, not that the raw lz value be recoverable).
func DecodeWidth(lzStored uint8) int {
	l := uint32(lzStored) + ((uint32(lzStored) + 1) >> 2)

	return int(4 - l)
}

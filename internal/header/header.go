// Package header packs and unpacks the 32-bit block header: eight 2-bit
// lz fields in the low half, eight 2-bit tz fields in the high half, one
// per lane, written little-endian on wire regardless of host byte order.
package header

import "github.com/nullstream/vcodec/endian"

// LaneCount is the fixed number of lanes per block.
const LaneCount = 8

// wireEngine is always little-endian: the block header's byte order is
// part of the wire format, not the host's.
var wireEngine = endian.GetLittleEndianEngine()

// Pack combines per-lane lz and tz fields into a single 32-bit header
// word: lane k's lz occupies bits 2k..2k+1, lane k's tz occupies bits
// 16+2k..16+2k+1.
func Pack(lz, tz [LaneCount]uint8) uint32 {
	var word uint32
	for k := 0; k < LaneCount; k++ {
		word |= uint32(lz[k]&0x3) << (2 * k)
		word |= uint32(tz[k]&0x3) << (16 + 2*k)
	}

	return word
}

// Unpack splits a 32-bit header word back into per-lane lz and tz fields.
func Unpack(word uint32) (lz, tz [LaneCount]uint8) {
	for k := 0; k < LaneCount; k++ {
		lz[k] = uint8((word >> (2 * k)) & 0x3)
		tz[k] = uint8((word >> (16 + 2*k)) & 0x3)
	}

	return lz, tz
}

// Write encodes word as 4 little-endian bytes at buf[offset:offset+4].
func Write(buf []byte, offset int, word uint32) {
	wireEngine.PutUint32(buf[offset:], word)
}

// Read decodes the 4 little-endian bytes at buf[offset:offset+4].
func Read(buf []byte, offset int) uint32 {
	return wireEngine.Uint32(buf[offset:])
}

// Package endian exposes the byte-order primitive the rest of this module
// needs: a single interface wide enough to both read/write fixed-width
// integers and append them to a growing buffer, satisfied directly by the
// standard library's binary.LittleEndian and binary.BigEndian values.
//
// internal/header always encodes block headers through
// GetLittleEndianEngine() — the wire format is little-endian on every host,
// regardless of the machine's native order. GetBigEndianEngine() exists so
// tests can construct a byte stream under the opposite order and confirm
// decoding is sensitive to it, rather than happening to work because the
// test host and the wire format agree.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is encoding/binary's ByteOrder plus AppendByteOrder, bundled
// into one interface so callers don't need to juggle both depending on
// whether they're writing into a fixed buffer or appending to a slice.
// binary.LittleEndian and binary.BigEndian already implement it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine this module's wire format uses.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the opposite-order engine, for tests that need
// to construct or inspect bytes under the non-wire order deliberately.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// nativeByteOrder reports the host CPU's byte order by laying a known
// 16-bit pattern over memory and inspecting which byte lands first. It's
// computed once; a machine's byte order can't change between calls.
var nativeByteOrder = detectNativeByteOrder()

func detectNativeByteOrder() binary.ByteOrder {
	probe := uint16(1)
	firstByte := (*[2]byte)(unsafe.Pointer(&probe))[0]

	if firstByte == 1 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// CheckEndianness reports the byte order the current process is running
// under.
func CheckEndianness() binary.ByteOrder {
	return nativeByteOrder
}

// IsNativeLittleEndian reports whether the host CPU is little-endian.
func IsNativeLittleEndian() bool {
	return nativeByteOrder == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host CPU is big-endian.
func IsNativeBigEndian() bool {
	return nativeByteOrder == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native byte
// order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeByteOrder
}

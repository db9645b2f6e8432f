package lane

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripTrailingZeroBytes(t *testing.T) {
	cases := []struct {
		name    string
		r       uint32
		wantTz  uint8
		wantSig uint32
	}{
		{"zero word", 0, 3, 0},
		{"no trailing zero byte", 0x12345678, 0, 0x12345678},
		{"one trailing zero byte", 0x12345600, 1, 0x123456},
		{"two trailing zero bytes", 0x12340000, 2, 0x1234},
		{"three trailing zero bytes", 0x12000000, 3, 0x12},
		{"single low byte set", 0x000000FF, 0, 0xFF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tz, shifted := StripTrailingZeroBytes(tc.r)
			require.Equal(t, tc.wantTz, tz)
			require.Equal(t, tc.wantSig, shifted)
		})
	}
}

func TestWidthAndLZ(t *testing.T) {
	cases := []struct {
		name      string
		s         uint32
		wantLZ    uint8
		wantWidth int
	}{
		{"zero significant word", 0, 3, 0},
		{"needs all four bytes", 0xFFFFFFFF, 0, 4},
		{"needs three bytes", 0x00FFFFFF, 1, 3},
		{"needs two bytes, msb set", 0x0000FFFF, 2, 2},
		{"needs one byte, collapsed to two", 0x000000FF, 2, 2},
		{"single bit in top byte", 0x01000000, 0, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lz, width := WidthAndLZ(tc.s)
			require.Equal(t, tc.wantLZ, lz)
			require.Equal(t, tc.wantWidth, width)
		})
	}
}

func TestDecodeWidthMatchesEncode(t *testing.T) {
	// DecodeWidth must reproduce the width WidthAndLZ computed, for every
	// stored lz symbol WidthAndLZ can actually emit.
	samples := []uint32{0, 0xFF, 0xFFFF, 0xFFFFFF, 0xFFFFFFFF, 0x80, 0x8000, 0x800000, 0x80000000}

	for _, s := range samples {
		lz, width := WidthAndLZ(s)
		require.Equal(t, width, DecodeWidth(lz), "s=%#x lz=%d", s, lz)
	}
}

func TestDecodeWidthTable(t *testing.T) {
	cases := []struct {
		lz   uint8
		want int
	}{
		{0, 4},
		{1, 3},
		{2, 2},
		{3, 0},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, DecodeWidth(tc.lz))
	}
}

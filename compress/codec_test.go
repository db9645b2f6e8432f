package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/nullstream/vcodec/format"
	"github.com/stretchr/testify/require"
)

func testName(payloadSize int, cType format.CompressionType) string {
	return fmt.Sprintf("payload_%dKB_compression_%s", payloadSize/1024, cType.String())
}

// getAllCodecs returns all built-in codec implementations for table-driven tests.
func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

func TestNoOpCompressor_EmptyData(t *testing.T) {
	compressor := NewNoOpCompressor()

	compressed, err := compressor.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	empty := []byte{}
	compressed, err = compressor.Compress(empty)
	require.NoError(t, err)
	require.Equal(t, empty, compressed)

	decompressed, err := compressor.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)

	decompressed, err = compressor.Decompress(empty)
	require.NoError(t, err)
	require.Equal(t, empty, decompressed)
}

func TestNoOpCompressor_RoundTrip(t *testing.T) {
	compressor := NewNoOpCompressor()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "small text data", data: []byte("hello world")},
		{name: "binary data", data: []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD}},
		{name: "repeated pattern", data: []byte("abcabcabcabcabc")},
		{name: "large payload", data: make([]byte, 64*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := compressor.Compress(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.data, compressed)
			if len(tt.data) > 0 {
				require.Same(t, &tt.data[0], &compressed[0])
			}

			decompressed, err := compressor.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, tt.data, decompressed)
			if len(compressed) > 0 {
				require.Same(t, &compressed[0], &decompressed[0])
			}
		})
	}
}

func TestNoOpCompressor_InterfaceCompliance(t *testing.T) {
	compressor := NewNoOpCompressor()

	var _ Compressor = compressor
	var _ Decompressor = compressor
	var _ Codec = compressor
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "decompressing nil should return nil")

			empty := []byte{}
			compressed, err = codec.Compress(empty)
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed, "decompressing empty should return empty")
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "small_text", data: []byte("Hello, World!")},
		{name: "repeated_pattern", data: bytes.Repeat([]byte("ABCD"), 100)},
		{name: "binary_data", data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{name: "single_byte", data: []byte{0x42}},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					if i%100 < 50 {
						data[i] = byte(i % 256)
					} else {
						data[i] = byte((i*7 + i*i) % 256)
					}
				}

				return data
			}(),
		},
		{name: "highly_compressible", data: make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					if len(tc.data) > 0 {
						require.NotNil(t, compressed)
					}

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

// TestAllCodecs_EncodedPayload exercises the codecs against the kind of byte
// slice they're meant for: variable-width vcodec block output, built here
// as a small synthetic stand-in (repeating low-entropy bytes) so this
// package's tests do not depend on the root package.
func TestAllCodecs_EncodedPayload(t *testing.T) {
	payload := make([]byte, 2048)
	for i := range payload {
		payload[i] = byte(i % 17)
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	cases := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range cases {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "test")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCompressionStats_CompressionRatio(t *testing.T) {
	stats := CompressionStats{OriginalSize: 1000, CompressedSize: 400}
	require.InDelta(t, 0.4, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 60.0, stats.SpaceSavings(), 1e-9)

	zero := CompressionStats{}
	require.Equal(t, 0.0, zero.CompressionRatio())
}

func TestTestName(t *testing.T) {
	require.Equal(t, "payload_4KB_compression_Zstd", testName(4096, format.CompressionZstd))
}

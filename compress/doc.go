// Package compress provides optional, outer compression codecs for
// already-encoded vcodec payloads.
//
// Compression here is a second, independent stage applied after
// vcodec.Encode/EncodeQuick has produced a byte slice. It never touches the
// block format itself and the core codec never calls into this package.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// and four built-in implementations, selected by format.CompressionType:
//   - None: no compression, returns the input unchanged
//   - Zstd: best compression ratio, moderate speed (klauspost/compress/zstd, pure Go)
//   - S2: balanced compression and speed (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4/v4)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	wire, err := codec.Compress(encoded) // encoded = vcodec.Encode(...) output
//	...
//	encoded, err := codec.Decompress(wire)
//
// # Selection guide
//
// | Workload                | Recommended | Reason                          |
// |-------------------------|-------------|----------------------------------|
// | Storage-constrained     | Zstd        | Best compression ratio           |
// | Latency-sensitive       | LZ4 or S2   | Fast decompression               |
// | CPU-constrained         | None        | No compression overhead          |
// | Network transmission    | Zstd        | Reduce bytes on the wire         |
//
// Encoded vcodec payloads are already byte-stripped and variable-width, so
// the achievable ratio depends heavily on how repetitive the underlying
// float data is; near-random residuals compress poorly regardless of codec.
//
// # Thread safety
//
// All built-in implementations are safe for concurrent use; LZ4 and Zstd
// pool their internal encoder/decoder state behind sync.Pool rather than
// holding per-call locks.
//
// # Extending
//
// Custom codecs only need to satisfy Codec:
//
//	type MyCodec struct{}
//
//	func (c MyCodec) Compress(data []byte) ([]byte, error)   { ... }
//	func (c MyCodec) Decompress(data []byte) ([]byte, error) { ... }
//
// See cmd/vcodecbench for a worked example that round-trips generated data
// through vcodec and then reports the combined ratio for the Codec selected
// by its -compress flag.
package compress

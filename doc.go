// Package vcodec implements a lossless codec for dense arrays of 32-bit
// IEEE-754 floats, built for telemetry-style streams where neighboring
// samples are highly correlated — time series, sensor traces, vertex
// streams.
//
// Two variants share the same block framing and header format but produce
// mutually incompatible streams:
//
//   - Encode/Decode: delta predictor followed by an xor-hash-table stage.
//     Better compression when residuals repeat under the hash, at the cost
//     of carrying a 256-entry state table across blocks.
//   - EncodeQuick/DecodeQuick: delta predictor only. Faster, no auxiliary
//     state, slightly larger output on repetitive data.
//
// # Usage
//
//	out := make([]byte, vcodec.UpperBound(len(values)))
//	n := vcodec.Encode(values, out)
//	wire := out[:n]
//	...
//	recovered := make([]float32, len(values))
//	vcodec.Decode(wire, recovered)
//
// The caller owns buffer sizing: out must be at least UpperBound(len(values))
// bytes, and Decode reconstructs exactly len(out) values — the original
// count is not recoverable from the stream and must be supplied by the
// caller, matching how it was encoded. values and out must not alias; the
// codec does not check for or guard against overlapping buffers.
//
// Every operation is synchronous, single-threaded, and performs no heap
// allocation; independent calls on disjoint buffers may run concurrently
// from different goroutines with no shared state between them. There is no
// input validation: malformed or truncated input produces undefined
// results, not an error. The optional checked package validates decode
// input at a small extra cost without changing the wire format.
package vcodec

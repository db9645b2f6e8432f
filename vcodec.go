package vcodec

// Encode compresses values into out using the full codec: a delta
// predictor followed by an xor-hash-table stage. out must be at least
// UpperBound(len(values)) bytes. Returns the number of bytes written.
//
// values and out must not alias.
func Encode(values []float32, out []byte) int {
	return encodeBlocks(values, out, true)
}

// Decode reconstructs len(out) values from data, which must have been
// produced by Encode with the same value count. data and out must not
// alias.
func Decode(data []byte, out []float32) {
	decodeBlocks(data, out, true)
}

// EncodeQuick compresses values into out using the quick codec: a delta
// predictor only, no auxiliary state. out must be at least
// UpperBound(len(values)) bytes. Returns the number of bytes written.
//
// Streams produced by EncodeQuick are not decodable by Decode, and streams
// produced by Encode are not decodable by DecodeQuick — the two variants
// are not interchangeable.
func EncodeQuick(values []float32, out []byte) int {
	return encodeBlocks(values, out, false)
}

// DecodeQuick reconstructs len(out) values from data, which must have been
// produced by EncodeQuick with the same value count.
func DecodeQuick(data []byte, out []float32) {
	decodeBlocks(data, out, false)
}

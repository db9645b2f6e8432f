// Package predictor implements the xor-stage hash table used by the full
// codec variant: a 256-entry direct-mapped table of recently seen per-lane
// deltas (the value before the xor stage). Each delta is stored at the slot
// given by an 8-bit hash of the delta that preceded it in the same lane.
//
// Table is always stack-resident for the life of one Encode/Decode call —
// callers embed it by value, never allocate it on the heap, and never
// share it across calls.
package predictor

// TableSize is the fixed capacity of the direct-mapped lookup table.
const TableSize = 256

// Table is the 256-entry xor-stage lookup table. The zero value is a
// ready-to-use, all-zero table, matching the codec's "initialized to
// zero" contract.
type Table struct {
	entries [TableSize]uint32
}

// Hash computes the table slot for a pre-xor delta value: discard the low
// byte, then xor bits 8..15 with bits 24..31. Bits 16..23 do not affect
// the slot.
func Hash(delta uint32) uint8 {
	return uint8(((delta >> 8) ^ (delta >> 24)) & 0xFF)
}

// Store writes delta at the given slot.
func (t *Table) Store(idx uint8, delta uint32) {
	t.entries[idx] = delta
}

// Gather reads the value at the given slot.
func (t *Table) Gather(idx uint8) uint32 {
	return t.entries[idx]
}

// LaneState is one lane's persistent xor-stage state across blocks: the
// slot it will store into next, and the value already gathered for use
// against the lane's next residual.
type LaneState struct {
	Idx    uint8
	XPrior uint32
}

// Peek returns the predicted value to xor against this block's delta,
// without mutating state. Encode xors it into the emitted residual;
// decode xors it out of the read residual to recover the delta — both
// need the value before the table advances.
func (ls *LaneState) Peek() uint32 {
	return ls.XPrior
}

// Commit stores the just-computed (pre-xor) delta at the lane's current
// slot, then recomputes the slot and gathered prediction for the next
// block. Must be called exactly once per lane per block, after Peek, by
// both Encode and Decode, in the same order, for state to stay in sync.
func (t *Table) Commit(ls *LaneState, delta uint32) {
	t.Store(ls.Idx, delta)
	ls.Idx = Hash(delta)
	ls.XPrior = t.Gather(ls.Idx)
}

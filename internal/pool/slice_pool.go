// Package pool provides sync.Pool-backed reuse of the float32 scratch
// buffers used by the benchmark CLI to amortize allocation across runs.
package pool

import "sync"

var float32SlicePool = sync.Pool{
	New: func() any { return &[]float32{} },
}

// GetFloat32Slice retrieves and resizes a float32 slice from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call the
// returned cleanup function to return the slice to the pool.
//
// Example:
//
//	values, cleanup := pool.GetFloat32Slice(1000)
//	defer cleanup()
//	// use values slice...
func GetFloat32Slice(size int) ([]float32, func()) {
	ptr, _ := float32SlicePool.Get().(*[]float32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float32SlicePool.Put(ptr) }
}

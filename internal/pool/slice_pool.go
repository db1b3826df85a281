package pool

import "sync"

// float64SlicePool holds scratch buffers for model evaluations on the
// chi-squared hot path, where an optimizer may score thousands of
// parameter vectors against the same sample set.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has exactly size elements; its contents are unspecified.
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function to return the slice to the pool
// and must not retain the slice afterwards.
//
// Example:
//
//	fx, cleanup := pool.GetFloat64Slice(len(x))
//	defer cleanup()
//	_ = m.EvaluateTo(fx, x, args)
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

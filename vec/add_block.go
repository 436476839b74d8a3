package vec

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-parallel/parallel"
)

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i] using the
// vectorized float64 kernel, which selects the best implementation for the
// host CPU. Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	vecmath.AddBlock(dst, a, b)
}

// AddBlockParallel performs element-wise addition: dst[i] = a[i] + b[i],
// applying the vectorized float64 kernel to each chunk in parallel.
// Slices must have equal length. Panics if lengths differ.
func AddBlockParallel(dst, a, b []float64, opts ...parallel.Option) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vec: slice length mismatch")
	}

	parallel.ForChunks(len(dst), func(lo, hi int) {
		vecmath.AddBlock(dst[lo:hi], a[lo:hi], b[lo:hi])
	}, opts...)
}

// Package vec provides elementwise slice kernels with sequential and
// fork-join parallel execution strategies. All strategies produce
// identical results for identical inputs.
package vec

import "github.com/cwbudde/algo-parallel/parallel"

// Number constrains the element types supported by the generic kernels.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns a newly allocated elementwise sum of a and b.
// Panics if lengths differ.
func Add[T Number](a, b []T) []T {
	dst := make([]T, len(a))
	AddInto(dst, a, b)

	return dst
}

// AddInto performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Runs sequentially in a single pass.
func AddInto[T Number](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vec: slice length mismatch")
	}

	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddIntoParallel performs element-wise addition: dst[i] = a[i] + b[i],
// splitting the index range across worker goroutines per the options.
// Each worker writes only to its own chunk of dst, so no two goroutines
// touch the same element. Slices must have equal length. Panics if
// lengths differ.
func AddIntoParallel[T Number](dst, a, b []T, opts ...parallel.Option) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vec: slice length mismatch")
	}

	parallel.ForChunks(len(dst), func(lo, hi int) {
		addRange(dst[lo:hi], a[lo:hi], b[lo:hi])
	}, opts...)
}

// addRange is the per-chunk loop body shared by the parallel kernels.
func addRange[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

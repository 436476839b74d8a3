// Package compare runs the sequential and parallel elementwise sum on the
// same inputs, verifies the results against each other, and reports the
// wall-clock duration of each strategy.
package compare

import (
	"time"

	"github.com/cwbudde/algo-parallel/parallel"
	"github.com/cwbudde/algo-parallel/vec"
)

// Result holds the outcome of one sequential-vs-parallel comparison.
type Result[T vec.Number] struct {
	N             int
	Sequential    time.Duration
	Parallel      time.Duration
	Output        []T  // parallel result
	Match         bool // sequential and parallel results agree elementwise
	FirstMismatch int  // index of first disagreement, -1 when Match
}

// Speedup returns the sequential/parallel duration ratio. Returns 0 when
// the parallel duration is too short to measure.
func (r Result[T]) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}

	return float64(r.Sequential) / float64(r.Parallel)
}

// Run computes the elementwise sum of a and b sequentially and in parallel,
// timing both passes. Both passes see identical inputs; the parallel pass
// uses the given partitioning options. Panics if lengths differ.
func Run[T vec.Number](a, b []T, opts ...parallel.Option) Result[T] {
	n := len(a)
	seq := make([]T, n)
	par := make([]T, n)

	start := time.Now()
	vec.AddInto(seq, a, b)
	seqElapsed := time.Since(start)

	start = time.Now()
	vec.AddIntoParallel(par, a, b, opts...)
	parElapsed := time.Since(start)

	first, match := Verify(seq, par)

	return Result[T]{
		N:             n,
		Sequential:    seqElapsed,
		Parallel:      parElapsed,
		Output:        par,
		Match:         match,
		FirstMismatch: first,
	}
}

// Verify reports whether want and got agree elementwise. On disagreement
// it returns the first differing index and false; otherwise -1 and true.
// Panics if lengths differ.
func Verify[T vec.Number](want, got []T) (int, bool) {
	if len(want) != len(got) {
		panic("compare: slice length mismatch")
	}

	for i := range want {
		if want[i] != got[i] {
			return i, false
		}
	}

	return -1, true
}

// Package gen generates random integer slices from an explicitly passed,
// seedable source, so runs are reproducible for a fixed seed.
package gen

import "math/rand/v2"

// NewRand returns a generator seeded with the given value. The same seed
// always yields the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Ints returns a slice of n integers drawn uniformly from the closed
// range [lo, hi]. Panics if n is negative or hi < lo.
func Ints(rng *rand.Rand, n, lo, hi int) []int {
	if n < 0 {
		panic("gen: negative length")
	}

	dst := make([]int, n)
	Fill(rng, dst, lo, hi)

	return dst
}

// Fill overwrites dst with integers drawn uniformly from the closed
// range [lo, hi]. Panics if hi < lo.
func Fill(rng *rand.Rand, dst []int, lo, hi int) {
	if hi < lo {
		panic("gen: empty range")
	}

	span := hi - lo + 1
	for i := range dst {
		dst[i] = lo + rng.IntN(span)
	}
}

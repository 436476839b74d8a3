// Package parallel provides a minimal fork-join executor for loops whose
// iterations are independent.
//
// The index range [0, n) is split into contiguous chunks of a fixed size,
// and chunks are assigned to a fixed set of worker goroutines in static
// round-robin order (chunk c goes to worker c mod workers). All workers
// rejoin at a single barrier before the call returns, so the result is
// complete once For or ForChunks returns.
//
// # Usage
//
// Run a loop body across all cores with default partitioning:
//
//	parallel.For(len(dst), func(i int) {
//	    dst[i] = a[i] + b[i]
//	})
//
// Or control the partitioning explicitly:
//
//	parallel.ForChunks(n, addRange,
//	    parallel.WithChunkSize(100),
//	    parallel.WithWorkers(4),
//	)
//
// The executor carries no state between calls and performs no
// synchronization beyond the final barrier; callers must ensure loop
// iterations do not write to shared locations.
package parallel

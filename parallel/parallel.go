package parallel

import "sync"

// ForChunks executes fn over contiguous sub-ranges covering [0, n).
// Each invocation receives a half-open range [lo, hi); ranges never overlap
// and their union is exactly [0, n). Chunks are assigned to workers in
// static round-robin order, and ForChunks returns only after every worker
// has finished. n <= 0 is a no-op.
func ForChunks(n int, fn func(lo, hi int), opts ...Option) {
	if n <= 0 {
		return
	}

	cfg := ApplyOptions(opts...)
	workers, chunkSize := cfg.resolve(n)
	numChunks := (n + chunkSize - 1) / chunkSize

	if workers == 1 {
		for c := 0; c < numChunks; c++ {
			lo := c * chunkSize
			hi := min(lo+chunkSize, n)
			fn(lo, hi)
		}

		return
	}

	var wg sync.WaitGroup

	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()

			for c := w; c < numChunks; c += workers {
				lo := c * chunkSize
				hi := min(lo+chunkSize, n)
				fn(lo, hi)
			}
		}(w)
	}

	wg.Wait()
}

// For executes fn for every index in [0, n), partitioned per the options.
// Equivalent to ForChunks with a per-index loop body.
func For(n int, fn func(i int), opts ...Option) {
	ForChunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	}, opts...)
}

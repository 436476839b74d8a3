package parallel

import "runtime"

// Config defines partitioning parameters for a parallel region.
type Config struct {
	// ChunkSize is the number of consecutive iterations assigned to a
	// worker as one unit. Zero or negative selects an even split of the
	// range across the workers.
	ChunkSize int
	// Workers is the number of goroutines executing chunks. Zero or
	// negative selects runtime.NumCPU().
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: one worker per CPU and an even
// split of the iteration range.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 0,
		Workers:   runtime.NumCPU(),
	}
}

// WithChunkSize sets the number of iterations per work unit.
func WithChunkSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.ChunkSize = size
		}
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(count int) Option {
	return func(cfg *Config) {
		if count > 0 {
			cfg.Workers = count
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// resolve clamps the config against a concrete range length and returns the
// effective worker count and chunk size. Both results are at least 1, and
// the worker count never exceeds the number of chunks.
func (cfg Config) resolve(n int) (workers, chunkSize int) {
	workers = cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	chunkSize = cfg.ChunkSize
	if chunkSize < 1 {
		// Even split, rounding up so workers*chunkSize >= n.
		chunkSize = (n + workers - 1) / workers
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	numChunks := (n + chunkSize - 1) / chunkSize
	if workers > numChunks {
		workers = numChunks
	}

	return workers, chunkSize
}

// Package config handles configuration loading and defaults for the
// parsum command.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Default values, matching the reference demo: 1000 elements in [1, 1000],
// static chunks of 100, and the first 10 elements printed.
const (
	DefaultN         = 1000
	DefaultMin       = 1
	DefaultMax       = 1000
	DefaultChunkSize = 100
	DefaultShow      = 10
)

// Config holds the full configuration for parsum.
type Config struct {
	// Array shape and value range.
	N   int `toml:"n"`
	Min int `toml:"min"`
	Max int `toml:"max"`

	// Partitioning of the parallel pass.
	ChunkSize int `toml:"chunk_size"`
	Workers   int `toml:"workers"`

	// Output control.
	Show    int  `toml:"show"`
	Verbose bool `toml:"verbose"`

	// Seed for the input generator. Zero selects a random seed.
	Seed uint64 `toml:"seed"`
}

// Errors returned by validation.
var (
	ErrNegativeLength = errors.New("config: n must be >= 0")
	ErrEmptyRange     = errors.New("config: max must be >= min")
)

// setDefaults populates cfg with the default values.
func setDefaults(cfg *Config) {
	cfg.N = DefaultN
	cfg.Min = DefaultMin
	cfg.Max = DefaultMax
	cfg.ChunkSize = DefaultChunkSize
	cfg.Workers = runtime.NumCPU()
	cfg.Show = DefaultShow
	cfg.Seed = 0
	cfg.Verbose = false
}

// Validate checks the config for inconsistent values.
func (cfg *Config) Validate() error {
	if cfg.N < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeLength, cfg.N)
	}
	if cfg.Max < cfg.Min {
		return fmt.Errorf("%w (got [%d, %d])", ErrEmptyRange, cfg.Min, cfg.Max)
	}

	return nil
}

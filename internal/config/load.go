package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Project config file names, checked in order in the current directory.
var projectConfigNames = []string{"parsum.toml", ".parsum.toml"}

// Environment variable prefix.
const envPrefix = "PARSUM_"

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Project config file (parsum.toml or .parsum.toml in current directory)
// 3. Environment variables (PARSUM_*)
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from project config file
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// 3. Override from environment
	loadFromEnv(cfg)

	// 4. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findProjectConfigFile returns the path of the first project config file
// that exists, or "" when none does.
func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config fields from PARSUM_* environment variables.
// Unparseable values are ignored.
func loadFromEnv(cfg *Config) {
	envInt(&cfg.N, "N")
	envInt(&cfg.Min, "MIN")
	envInt(&cfg.Max, "MAX")
	envInt(&cfg.ChunkSize, "CHUNK_SIZE")
	envInt(&cfg.Workers, "WORKERS")
	envInt(&cfg.Show, "SHOW")
	envUint64(&cfg.Seed, "SEED")
	envBool(&cfg.Verbose, "VERBOSE")
}

func envInt(dst *int, name string) {
	if v, err := strconv.Atoi(os.Getenv(envPrefix + name)); err == nil {
		*dst = v
	}
}

func envUint64(dst *uint64, name string) {
	if v, err := strconv.ParseUint(os.Getenv(envPrefix+name), 10, 64); err == nil {
		*dst = v
	}
}

func envBool(dst *bool, name string) {
	if v, err := strconv.ParseBool(os.Getenv(envPrefix + name)); err == nil {
		*dst = v
	}
}

// parseFlags registers flags on fs with the current config values as
// defaults and parses args, so unset flags keep file/env values.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.IntVar(&cfg.N, "n", cfg.N, "number of elements per array")
	fs.IntVar(&cfg.Min, "min", cfg.Min, "lowest generated value (inclusive)")
	fs.IntVar(&cfg.Max, "max", cfg.Max, "highest generated value (inclusive)")
	fs.IntVar(&cfg.ChunkSize, "chunk", cfg.ChunkSize, "iterations per work unit")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines for the parallel pass")
	fs.IntVar(&cfg.Show, "show", cfg.Show, "leading elements to print per array")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed (0 = random)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	return fs.Parse(args)
}

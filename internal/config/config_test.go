// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.N != DefaultN {
		t.Errorf("N: got %d, want %d", cfg.N, DefaultN)
	}
	if cfg.Min != DefaultMin {
		t.Errorf("Min: got %d, want %d", cfg.Min, DefaultMin)
	}
	if cfg.Max != DefaultMax {
		t.Errorf("Max: got %d, want %d", cfg.Max, DefaultMax)
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize: got %d, want %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers: got %d, want >= 1", cfg.Workers)
	}
	if cfg.Show != DefaultShow {
		t.Errorf("Show: got %d, want %d", cfg.Show, DefaultShow)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed: got %d, want 0", cfg.Seed)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parsum.toml")

	content := "n = 500\nchunk_size = 25\nworkers = 2\nseed = 99\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	setDefaults(cfg)

	if err := loadConfigFile(cfg, path); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.N != 500 {
		t.Errorf("N: got %d, want 500", cfg.N)
	}
	if cfg.ChunkSize != 25 {
		t.Errorf("ChunkSize: got %d, want 25", cfg.ChunkSize)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers: got %d, want 2", cfg.Workers)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed: got %d, want 99", cfg.Seed)
	}
	// Untouched fields keep defaults.
	if cfg.Show != DefaultShow {
		t.Errorf("Show: got %d, want default %d", cfg.Show, DefaultShow)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PARSUM_N", "64")
	t.Setenv("PARSUM_SEED", "7")
	t.Setenv("PARSUM_VERBOSE", "true")
	t.Setenv("PARSUM_WORKERS", "not-a-number")

	cfg := &Config{}
	setDefaults(cfg)
	defaultWorkers := cfg.Workers

	loadFromEnv(cfg)

	if cfg.N != 64 {
		t.Errorf("N: got %d, want 64", cfg.N)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed: got %d, want 7", cfg.Seed)
	}
	if !cfg.Verbose {
		t.Error("Verbose: got false, want true")
	}
	if cfg.Workers != defaultWorkers {
		t.Errorf("Workers: got %d, want default %d", cfg.Workers, defaultWorkers)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	t.Setenv("PARSUM_N", "64")

	fs := flag.NewFlagSet("parsum", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-n", "128", "-chunk", "8"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.N != 128 {
		t.Errorf("N: got %d, want 128 (flag beats env)", cfg.N)
	}
	if cfg.ChunkSize != 8 {
		t.Errorf("ChunkSize: got %d, want 8", cfg.ChunkSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"zero n valid", func(c *Config) { c.N = 0 }, false},
		{"negative n", func(c *Config) { c.N = -1 }, true},
		{"inverted range", func(c *Config) { c.Min = 10; c.Max = 1 }, true},
		{"single value range", func(c *Config) { c.Min = 5; c.Max = 5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

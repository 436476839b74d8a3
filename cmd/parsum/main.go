// Command parsum generates two random integer arrays, sums them
// elementwise both sequentially and in parallel, verifies that the two
// strategies agree, and prints timing figures for each pass.
//
// Usage:
//
//	parsum [flags]
//
// Examples:
//
//	parsum
//	parsum -n 1000000 -chunk 4096 -workers 8
//	parsum -seed 42 -show 20
//
// Configuration may also come from parsum.toml (or .parsum.toml) in the
// current directory and from PARSUM_* environment variables; flags take
// precedence. The program always exits 0: a verification mismatch is
// printed as a diagnostic, not treated as a failure.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/algo-parallel/gen"
	"github.com/cwbudde/algo-parallel/internal/config"
	"github.com/cwbudde/algo-parallel/measure/compare"
	"github.com/cwbudde/algo-parallel/parallel"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.InfoLevel,
		Prefix: "parsum",
	})

	fs := flag.NewFlagSet("parsum", flag.ExitOnError)

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	logger.Debug("configuration",
		"n", cfg.N,
		"range", fmt.Sprintf("[%d, %d]", cfg.Min, cfg.Max),
		"chunk", cfg.ChunkSize,
		"workers", cfg.Workers,
		"seed", seed,
	)

	rng := gen.NewRand(seed)
	a := gen.Ints(rng, cfg.N, cfg.Min, cfg.Max)
	b := gen.Ints(rng, cfg.N, cfg.Min, cfg.Max)

	res := compare.Run(a, b,
		parallel.WithChunkSize(cfg.ChunkSize),
		parallel.WithWorkers(cfg.Workers),
	)

	fmt.Printf("Summing %d-element arrays (chunk=%d, workers=%d)\n\n",
		cfg.N, cfg.ChunkSize, cfg.Workers)

	printArrays(cfg.Show, a, b, res.Output)

	if res.Match {
		fmt.Println("Verification (sequential == parallel): OK")
	} else {
		i := res.FirstMismatch
		fmt.Printf("Mismatch at i=%d: sequential=%d parallel=%d\n",
			i, a[i]+b[i], res.Output[i])
		fmt.Println("Verification (sequential == parallel): FAIL")
	}

	fmt.Printf("\nSequential time (ms): %.4f\n", res.Sequential.Seconds()*1e3)
	fmt.Printf("Parallel time   (ms): %.4f\n", res.Parallel.Seconds()*1e3)

	logger.Debug("done", "speedup", fmt.Sprintf("%.2fx", res.Speedup()))
}

// printArrays writes the first show elements of each array in aligned
// columns. show is clamped to the array length.
func printArrays(show int, a, b, sum []int) {
	show = min(show, len(a))
	if show <= 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "i\tA\tB\tA+B\t\n")
	for i := 0; i < show; i++ {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\n", i, a[i], b[i], sum[i])
	}
	w.Flush()

	if show < len(a) {
		fmt.Println("... (" + strconv.Itoa(len(a)-show) + " more)")
	}
	fmt.Println()
}

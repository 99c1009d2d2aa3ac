package matbench

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"
)

// DefaultMatrixSize is the matrix order benchmarked when none is given.
const DefaultMatrixSize = 2048

// Result captures one timed multiplier run. Results are printed, never
// persisted.
type Result struct {
	Method  string
	Elapsed time.Duration
	MFLOPS  float64
}

// Benchmark drives one sequential pass over the three multiplier
// implementations: fetch operands, time each variant, cross-check against
// the naive oracle, print a summary table.
type Benchmark struct {
	N         int
	BlockSize int
	Cache     *MatrixCache

	// Force regenerates the operand matrices even when cache files exist.
	Force bool

	// Tolerance is the absolute tolerance for cross-checks. Zero means
	// DefaultAbsTol.
	Tolerance float32

	// Out receives progress messages and the summary table. Nil means
	// os.Stdout.
	Out io.Writer

	// Seed seeds operand generation when the cache is cold. Zero means a
	// time-derived seed.
	Seed int64
}

// NewBenchmark returns a benchmark over n×n matrices with the given block
// size for the blocked variant. Non-positive arguments fall back to
// DefaultMatrixSize and DefaultBlockSize.
func NewBenchmark(n, blockSize int, cache *MatrixCache) *Benchmark {
	if n <= 0 {
		n = DefaultMatrixSize
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Benchmark{
		N:         n,
		BlockSize: blockSize,
		Cache:     cache,
	}
}

// mflops derives throughput from the fixed operation count 2n³.
func mflops(n int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	ops := 2 * float64(n) * float64(n) * float64(n)
	return ops / secs / 1e6
}

// Run executes the benchmark pass and returns the naive, blas and blocked
// results in that order. Cache failures are fatal; numerical mismatches are
// reported as warnings and execution continues.
func (b *Benchmark) Run() ([]Result, error) {
	out := b.Out
	if out == nil {
		out = os.Stdout
	}
	tol := b.Tolerance
	if tol == 0 {
		tol = DefaultAbsTol
	}
	seed := b.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	features := DetectCPUFeatures()
	fmt.Fprintf(out, "Matrix multiply benchmark: n=%d, block=%d\n", b.N, b.BlockSize)
	fmt.Fprintf(out, "Host: %s/%s, %d cores, features: %s\n\n",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), features)

	fmt.Fprintf(out, "Fetching operand matrices (%dx%d)...\n", b.N, b.N)
	a, err := b.Cache.Fetch("matrix_a", b.N, b.Force, rng)
	if err != nil {
		return nil, err
	}
	bm, err := b.Cache.Fetch("matrix_b", b.N, b.Force, rng)
	if err != nil {
		return nil, err
	}

	multipliers := []Multiplier{
		NaiveMultiplier{},
		BLASMultiplier{},
		NewBlockedMultiplier(b.BlockSize),
	}

	var (
		results []Result
		oracle  *Matrix
	)
	for _, m := range multipliers {
		fmt.Fprintf(out, "Running %s...\n", m.Name())
		start := time.Now()
		c, err := m.Multiply(a, bm)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		res := Result{
			Method:  m.Name(),
			Elapsed: elapsed,
			MFLOPS:  mflops(b.N, elapsed),
		}
		results = append(results, res)
		fmt.Fprintf(out, "  %s: %v (%.2f MFLOPS)\n", m.Name(), elapsed, res.MFLOPS)

		if oracle == nil {
			// First variant is the oracle; nothing to compare yet.
			oracle = c
			continue
		}
		cmp, err := CompareMatrices(oracle, c, tol)
		if err != nil {
			return nil, err
		}
		if !cmp.Within() {
			fmt.Fprintf(out, "WARNING: %s result disagrees with naive oracle: max abs diff %e exceeds tolerance %e\n",
				m.Name(), cmp.MaxAbsDiff, tol)
		}
	}

	b.printSummary(out, results)
	return results, nil
}

// printSummary writes the results table and the blocked throughput as a
// percentage of the blas reference throughput.
func (b *Benchmark) printSummary(out io.Writer, results []Result) {
	fmt.Fprintf(out, "\n%-10s %14s %12s\n", "Method", "Elapsed", "MFLOPS")
	for _, r := range results {
		fmt.Fprintf(out, "%-10s %14v %12.2f\n", r.Method, r.Elapsed, r.MFLOPS)
	}

	blas, blocked := results[1], results[2]
	if blas.Elapsed <= 0 || blas.MFLOPS <= 0 {
		fmt.Fprintf(out, "\nBLAS reference elapsed time is non-positive; skipping throughput ratio\n")
		return
	}
	fmt.Fprintf(out, "\nBlocked throughput is %.1f%% of the BLAS reference\n",
		blocked.MFLOPS/blas.MFLOPS*100)
}

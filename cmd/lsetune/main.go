// Command lsetune measures log-sum-exp throughput for each accumulator
// count on the host machine.
//
// The best accumulator count depends on the architecture: it trades the
// number of in-flight exponentials against register pressure. The library
// defaults (8 for vectors, 5 for matrix columns) are good on common
// x86-64 parts, but a user tuning a hot loop can run this tool and pass
// the winner to LogSumExpN.
//
// Usage:
//
//	lsetune -n 100000 -iters 50
//	lsetune -rows 1000 -cols 1000 -iters 10    # column-wise sweep
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	logsumexp "github.com/ajroetker/go-logsumexp"
	"github.com/ajroetker/go-logsumexp/hwy"
)

var (
	n     = flag.Int("n", 100000, "Vector length for the single-vector sweep")
	rows  = flag.Int("rows", 0, "Matrix rows; with -cols switches to the column-wise sweep")
	cols  = flag.Int("cols", 0, "Matrix columns")
	iters = flag.Int("iters", 50, "Iterations per accumulator count (best time wins)")
	lo    = flag.Float64("lo", -10000, "Lower bound of the uniform test data")
	hi    = flag.Float64("hi", -9000, "Upper bound of the uniform test data")
	seed  = flag.Int64("seed", 1, "Seed for the test data generator")
)

func main() {
	flag.Parse()

	if *iters < 1 || *n < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n and -iters must be positive\n")
		os.Exit(1)
	}

	fmt.Printf("SIMD target: %s (%d-byte vectors, %d float64 lanes)\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[float64]())

	if *rows > 0 && *cols > 0 {
		sweepColumns(*rows, *cols)
		return
	}
	sweepVector(*n)
}

func makeData(size int) []float64 {
	rng := rand.New(rand.NewSource(*seed))
	v := make([]float64, size)
	for i := range v {
		v[i] = *lo + (*hi-*lo)*rng.Float64()
	}
	return v
}

func sweepVector(size int) {
	v := makeData(size)
	fmt.Printf("LogSumExpN over %d elements, best of %d runs:\n", size, *iters)

	reference := logsumexp.LogSumExp(v)
	for acc := 1; acc <= logsumexp.MaxAccumulators; acc++ {
		best := time.Duration(1<<63 - 1)
		var result float64
		for i := 0; i < *iters; i++ {
			start := time.Now()
			result = logsumexp.LogSumExpN(v, acc)
			if d := time.Since(start); d < best {
				best = d
			}
		}
		report(acc, best, int64(size)*8, result, reference)
	}
}

func sweepColumns(nRows, nCols int) {
	m := makeData(nRows * nCols)
	fmt.Printf("ColLogSumExpsN over a %dx%d matrix, best of %d runs:\n", nRows, nCols, *iters)

	reference := logsumexp.ColLogSumExps(m, nRows, nCols)[0]
	for acc := 1; acc <= logsumexp.MaxAccumulators; acc++ {
		best := time.Duration(1<<63 - 1)
		var result float64
		for i := 0; i < *iters; i++ {
			start := time.Now()
			result = logsumexp.ColLogSumExpsN(m, nRows, nCols, acc)[0]
			if d := time.Since(start); d < best {
				best = d
			}
		}
		report(acc, best, int64(nRows)*int64(nCols)*8, result, reference)
	}
}

func report(acc int, best time.Duration, bytes int64, result, reference float64) {
	gbps := float64(bytes) / best.Seconds() / 1e9
	marker := ""
	if diff := result - reference; diff > 1e-9 || diff < -1e-9 {
		// Accumulator count must not change the answer beyond rounding.
		marker = "  MISMATCH"
	}
	fmt.Printf("  accumulators=%2d  %12v  %7.2f GB/s%s\n", acc, best, gbps, marker)
}

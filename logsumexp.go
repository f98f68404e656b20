// Package logsumexp computes log(sum(exp(x))) and related quantities
// without overflow or underflow, using SIMD-width data parallelism.
//
// The naive computation log(sum(exp(x))) overflows as soon as any x[i]
// exceeds roughly 709 and underflows to -Inf when all x[i] are very
// negative, even though the true result is perfectly representable. The
// functions here subtract the maximum before exponentiating, keeping every
// intermediate term in (0, 1], and add the maximum back after the final
// logarithm.
//
// The reductions run over independent accumulator banks so that the
// floating-point additions and exponentials of consecutive blocks do not
// form a single dependency chain. The accumulator count can be chosen per
// call; 8 is typically fastest for a single vector and 5 for column-wise
// reduction, but this is architecture-dependent and the difference inside
// [2, 12] is usually small. The cmd/lsetune tool measures it on the host.
//
// Example:
//
//	logx := make([]float64, 1e5)
//	for i := range logx {
//		logx[i] = -10000 + 1000*rand.Float64()
//	}
//	// Every exp(logx[i]) underflows to 0, so the naive
//	// math.Log of the summed exponentials is -Inf.
//	logsumexp.LogSumExp(logx) // ≈ -8995.45
//
// NaN and ±Inf inputs propagate through ordinary floating-point
// arithmetic: an input containing +Inf yields NaN (the shift computes
// Inf - Inf), as does an input that is entirely -Inf. Missing-value
// filtering is the caller's responsibility.
package logsumexp

import (
	"errors"
	stdmath "math"

	"github.com/ajroetker/go-logsumexp/hwy"
)

const (
	// MaxAccumulators is the largest accumulator count a reduction will
	// run with. Requests above it are capped.
	MaxAccumulators = 12

	// DefaultAccumulators is used by LogSumExp and whenever a requested
	// count falls below 1.
	DefaultAccumulators = 8

	// DefaultColAccumulators is used by ColLogSumExps. Column reduction
	// already parallelizes across columns at a coarser grain, so fewer
	// accumulators per column tend to win.
	DefaultColAccumulators = 5
)

// ErrLengthMismatch is returned by LogAddExpInPlace when the two input
// slices have different lengths.
var ErrLengthMismatch = errors.New("logsumexp: input slices must have equal length")

// LogSumExp returns log(sum(exp(logv))) computed in a numerically stable
// way with DefaultAccumulators accumulators.
//
// Panics if logv is empty; the result of an empty sum in log space has no
// useful representation and the caller must decide what it means.
func LogSumExp[T hwy.Floats](logv []T) T {
	return logSum(logv, DefaultAccumulators)
}

// LogSumExpN is LogSumExp with an explicit accumulator count. Counts above
// MaxAccumulators are silently capped to MaxAccumulators; counts below 1
// fall back to DefaultAccumulators. The count affects only throughput,
// never the mathematical result.
func LogSumExpN[T hwy.Floats](logv []T, accumulators int) T {
	if accumulators > MaxAccumulators {
		accumulators = MaxAccumulators
	}
	return logSumN(logv, accumulators)
}

// ColLogSumExps returns log(sum(exp(column))) for every column of a
// column-major matrix with nRows rows and nCols columns, using
// DefaultColAccumulators accumulators per column.
//
// m must hold at least nRows*nCols elements, column j contiguous at
// m[j*nRows]. Panics if nRows is zero (each column reduction is then a
// reduction over an empty slice).
func ColLogSumExps[T hwy.Floats](m []T, nRows, nCols int) []T {
	return ColLogSumExpsN(m, nRows, nCols, DefaultColAccumulators)
}

// ColLogSumExpsN is ColLogSumExps with an explicit accumulator count,
// capped and defaulted exactly like LogSumExpN.
func ColLogSumExpsN[T hwy.Floats](m []T, nRows, nCols, accumulators int) []T {
	if accumulators > MaxAccumulators {
		accumulators = MaxAccumulators
	}
	return colLogSum(m, nRows, nCols, accumulators)
}

// LogAddExp returns the element-wise log(exp(logA[i]) + exp(logB[i])) of
// two equal-length slices as a fresh slice.
//
// If the lengths differ, it returns a length-1 slice holding NaN rather
// than failing; callers that prefer an error should use LogAddExpInPlace.
// This mirrors the missing-value convention of array-language hosts where
// a sentinel result flows through subsequent computation.
func LogAddExp[T hwy.Floats](logA, logB []T) []T {
	if len(logA) != len(logB) {
		return []T{T(stdmath.NaN())}
	}
	result := make([]T, len(logA))
	copy(result, logA)
	logAdd(result, logB)
	return result
}

// LogAddExpInPlace overwrites logA element-wise with
// log(exp(logA[i]) + exp(logB[i])). It returns ErrLengthMismatch when the
// slices differ in length, leaving logA untouched.
func LogAddExpInPlace[T hwy.Floats](logA, logB []T) error {
	if len(logA) != len(logB) {
		return ErrLengthMismatch
	}
	logAdd(logA, logB)
	return nil
}

// Copyright 2026 go-logsumexp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logsumexp

import (
	stdmath "math"

	"github.com/ajroetker/go-logsumexp/hwy"
	"github.com/ajroetker/go-logsumexp/hwy/math"
)

// maxElement returns the maximum value of v using nAcc parallel vector
// accumulators, with a scalar scan for inputs shorter than one full block.
//
// NaN handling follows compare-and-select semantics throughout: on the
// vector path a NaN loaded into a block propagates into its accumulator,
// while on the scalar paths a NaN candidate loses against the running
// maximum. This matches the asymmetry of hardware max instructions versus
// libm fmax and is documented rather than papered over.
//
// Panics if v is empty.
func maxElement[T hwy.Floats](v []T, nAcc int) T {
	if len(v) == 0 {
		panic("logsumexp: max of empty slice")
	}
	if len(v) == 1 {
		return v[0]
	}

	w := hwy.MaxLanes[T]()
	block := nAcc * w

	// Too short to fill every accumulator: plain scalar scan.
	if len(v) < block {
		m := v[0]
		for _, x := range v[1:] {
			if x > m {
				m = x
			}
		}
		return m
	}

	// Seed the accumulators from the first block, then fold in the
	// remaining full blocks. Independent accumulators keep consecutive
	// iterations free of data dependencies on each other.
	var mn [MaxAccumulators]hwy.Vec[T]
	for k := 0; k < nAcc; k++ {
		mn[k] = hwy.Load(v[k*w:])
	}
	l := len(v) - len(v)%block
	for i := block; i < l; i += block {
		for k := 0; k < nAcc; k++ {
			mn[k] = hwy.Max(mn[k], hwy.Load(v[i+k*w:]))
		}
	}

	// Combine accumulators, then lanes, then the scalar tail.
	for k := 1; k < nAcc; k++ {
		mn[0] = hwy.Max(mn[0], mn[k])
	}
	m := hwy.ReduceMax(mn[0])
	for i := l; i < len(v); i++ {
		if v[i] > m {
			m = v[i]
		}
	}
	return m
}

// logSum computes log(sum(exp(logv))) with the max-shift stabilization,
// using nAcc parallel vector accumulators. nAcc must be in
// [1, MaxAccumulators]; callers go through logSumN which guarantees that.
//
// The block loop is a single fused pass: each loaded vector is shifted by
// the broadcast maximum, exponentiated, and added to its accumulator before
// the next one is touched. Elements beyond the last full block are handled
// by a scalar loop, so no index outside [0, len(logv)) is ever read.
//
// Degenerate inputs are not guarded: an all--Inf input yields NaN (the
// shift produces exp(-Inf - -Inf) = exp(NaN)), and any +Inf input yields
// NaN for the same reason. Panics if logv is empty.
func logSum[T hwy.Floats](logv []T, nAcc int) T {
	m := maxElement(logv, nAcc)

	w := hwy.MaxLanes[T]()
	block := nAcc * w
	l := len(logv) - len(logv)%block

	if l >= block {
		var an [MaxAccumulators]hwy.Vec[T]
		for k := 0; k < nAcc; k++ {
			an[k] = hwy.Zero[T]()
		}
		mm := hwy.Set(m)
		for i := 0; i < l; i += block {
			for k := 0; k < nAcc; k++ {
				vk := hwy.Load(logv[i+k*w:])
				an[k] = hwy.Add(an[k], math.Exp(hwy.Sub(vk, mm)))
			}
		}

		// Scalar tail, then horizontal combine.
		var s T
		for i := l; i < len(logv); i++ {
			s += T(stdmath.Exp(float64(logv[i] - m)))
		}
		for k := 1; k < nAcc; k++ {
			an[0] = hwy.Add(an[0], an[k])
		}
		return m + T(stdmath.Log(float64(s+hwy.ReduceSum(an[0]))))
	}

	// No full block: the whole input is the tail.
	var s T
	for i := 0; i < len(logv); i++ {
		s += T(stdmath.Exp(float64(logv[i] - m)))
	}
	return m + T(stdmath.Log(float64(s)))
}

// logSumN selects the accumulator count at call time. Requests inside
// [1, MaxAccumulators] run with exactly that count; anything else falls
// back to DefaultAccumulators. The public wrappers additionally cap
// requests above MaxAccumulators before calling here, so only requests
// below 1 reach the fallback from the exported API.
func logSumN[T hwy.Floats](logv []T, accumulators int) T {
	if accumulators < 1 || accumulators > MaxAccumulators {
		accumulators = DefaultAccumulators
	}
	return logSum(logv, accumulators)
}

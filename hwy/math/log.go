package math

import (
	stdmath "math"

	"github.com/ajroetker/go-logsumexp/hwy"
)

// Log computes ln(x) for each element in the vector.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(0) = -Inf
//   - Log(x) = NaN for x < 0
//   - Log(NaN) = NaN
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(stdmath.Log(float64(x)))
	}
	return hwy.Load(result)
}

// Log1p computes log(1 + x) for each element in the vector.
//
// This is more accurate than computing log(1 + x) directly when x is close
// to zero, avoiding the cancellation that occurs when adding 1 to a small
// number and then taking the logarithm.
//
// Special cases:
//   - Log1p(x) = NaN if x < -1
//   - Log1p(-1) = -Inf
//   - Log1p(+Inf) = +Inf
//   - Log1p(NaN) = NaN
//   - Log1p(0) = 0
func Log1p[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(stdmath.Log1p(float64(x)))
	}
	return hwy.Load(result)
}

// Package math provides vector transcendental functions for the hwy
// vector types. This mirrors Highway's hwy/contrib/math layout.
//
// These are portable fallback implementations that apply the scalar
// standard-library function to each lane. Architecture-specific
// replacements can be slotted in behind the same signatures without
// touching the kernels that call them.
package math

import (
	stdmath "math"

	"github.com/ajroetker/go-logsumexp/hwy"
)

// Exp computes e^x for each element in the vector.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(stdmath.Exp(float64(x)))
	}
	return hwy.Load(result)
}

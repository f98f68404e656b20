package logsumexp

import (
	stdmath "math"

	"github.com/ajroetker/go-logsumexp/hwy"
	"github.com/ajroetker/go-logsumexp/hwy/math"
)

// logAdd overwrites dst element-wise with log(exp(dst[i]) + exp(src[i])).
// Requires len(dst) == len(src); the exported wrappers check that.
//
// Per pair the larger value is kept in log space and the smaller folded in
// via log1p(exp(lo-hi)). Log1p rather than log(1+x) preserves precision
// when exp(lo-hi) is close to zero. The tail past the last full vector is
// handled by a scalar loop with branch-based max/min.
func logAdd[T hwy.Floats](dst, src []T) {
	w := hwy.MaxLanes[T]()
	l := len(dst) - len(dst)%w

	for i := 0; i < l; i += w {
		v1 := hwy.Load(dst[i:])
		v2 := hwy.Load(src[i:])
		hi := hwy.Max(v1, v2)
		lo := hwy.Min(v1, v2)
		r := hwy.Add(hi, math.Log1p(math.Exp(hwy.Sub(lo, hi))))
		hwy.Store(r, dst[i:])
	}

	for i := l; i < len(dst); i++ {
		hi, lo := dst[i], src[i]
		if lo > hi {
			hi, lo = lo, hi
		}
		dst[i] = hi + T(stdmath.Log1p(stdmath.Exp(float64(lo-hi))))
	}
}

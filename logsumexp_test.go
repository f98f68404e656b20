package logsumexp

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSumExpPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	v := uniformSlice(rng, 777, -10000, -9000)
	want := LogSumExp(v)

	for trial := 0; trial < 5; trial++ {
		p := make([]float64, len(v))
		copy(p, v)
		rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		assert.InEpsilon(t, want, LogSumExp(p), relTol, "trial %d", trial)
	}
}

func TestLogSumExpAtLeastMax(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 5, 33, 512} {
		v := uniformSlice(rng, n, -50, 50)
		m := v[0]
		for _, x := range v {
			if x > m {
				m = x
			}
		}
		got := LogSumExp(v)
		assert.GreaterOrEqual(t, got+relTol*stdmath.Abs(got), m, "n=%d", n)
	}
}

func TestLogSumExpAccumulatorCountIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	v := uniformSlice(rng, 1234, -10000, -9000)
	want := LogSumExpN(v, 1)
	for n := 2; n <= MaxAccumulators; n++ {
		assert.InEpsilon(t, want, LogSumExpN(v, n), relTol, "accumulators=%d", n)
	}
}

func TestLogSumExpNOverRangeMatchesCap(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	v := uniformSlice(rng, 999, -100, 0)
	capped := LogSumExpN(v, MaxAccumulators)
	assert.InEpsilon(t, capped, LogSumExpN(v, 20), relTol)
	assert.InEpsilon(t, capped, LogSumExpN(v, 1000), relTol)
}

func TestColLogSumExpsMatchesPerColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	const nRows, nCols = 37, 11
	m := uniformSlice(rng, nRows*nCols, -10000, -9000)

	for _, accumulators := range []int{1, 3, 5, 8, 12, 20} {
		got := ColLogSumExpsN(m, nRows, nCols, accumulators)
		require.Len(t, got, nCols)
		for j := 0; j < nCols; j++ {
			col := m[j*nRows : (j+1)*nRows]
			assert.InEpsilon(t, LogSumExp(col), got[j], relTol,
				"accumulators=%d col=%d", accumulators, j)
		}
	}
}

func TestColLogSumExpsSingleColumn(t *testing.T) {
	v := []float64{-9782.35, -9279.50, -9402.64}
	got := ColLogSumExps(v, len(v), 1)
	require.Len(t, got, 1)
	assert.InEpsilon(t, LogSumExp(v), got[0], relTol)
}

func TestLogAddExpMatchesPairwiseLogSumExp(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	a := uniformSlice(rng, 513, -10000, -9000)
	b := make([]float64, len(a))
	for i := range b {
		b[i] = a[i] + rng.NormFloat64()
	}

	got := LogAddExp(a, b)
	require.Len(t, got, len(a))
	for i := range got {
		assert.InEpsilon(t, LogSumExp([]float64{a[i], b[i]}), got[i], relTol, "i=%d", i)
	}
}

func TestLogAddExpDoesNotMutateInputs(t *testing.T) {
	a := []float64{-9782.350, -9279.501, -9402.641}
	b := []float64{-9781.286, -9279.381, -9402.887}
	aCopy := append([]float64(nil), a...)
	bCopy := append([]float64(nil), b...)

	LogAddExp(a, b)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

func TestLogAddExpSpecialValues(t *testing.T) {
	inf := stdmath.Inf(1)
	negInf := stdmath.Inf(-1)

	got := LogAddExp([]float64{negInf}, []float64{1.0})
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0])

	got = LogAddExp([]float64{negInf}, []float64{negInf})
	require.Len(t, got, 1)
	assert.True(t, stdmath.IsNaN(got[0]), "got %v", got[0])

	// Both +Inf: the shift computes Inf - Inf.
	got = LogAddExp([]float64{inf}, []float64{inf})
	require.Len(t, got, 1)
	assert.True(t, stdmath.IsNaN(got[0]), "got %v", got[0])

	// One +Inf against a finite value: the infinite operand dominates and
	// the folded term exp(-Inf) vanishes, so the sum stays +Inf. (A NaN
	// here would require exp(-Inf) != 0.)
	got = LogAddExp([]float64{inf}, []float64{1.0})
	require.Len(t, got, 1)
	assert.True(t, stdmath.IsInf(got[0], 1), "got %v", got[0])
}

func TestLogAddExpLengthMismatchSentinel(t *testing.T) {
	got := LogAddExp([]float64{1.0, 2.0}, []float64{1.0})
	require.Len(t, got, 1)
	assert.True(t, stdmath.IsNaN(got[0]), "got %v", got[0])
}

func TestLogAddExpInPlace(t *testing.T) {
	a := []float64{-9782.350, -9279.501}
	b := []float64{-9781.286, -9279.381}
	want := LogAddExp(a, b)

	require.NoError(t, LogAddExpInPlace(a, b))
	assert.Equal(t, want, a)
}

func TestLogAddExpInPlaceLengthMismatch(t *testing.T) {
	a := []float64{1.0, 2.0}
	aCopy := append([]float64(nil), a...)

	err := LogAddExpInPlace(a, []float64{1.0})
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, aCopy, a, "input must be untouched on error")
}

func TestLogAddExpTailPath(t *testing.T) {
	// Lengths that are deliberately not multiples of any vector width, so
	// the scalar tail runs.
	rng := rand.New(rand.NewSource(16))
	for _, n := range []int{1, 3, 5, 9, 17} {
		a := uniformSlice(rng, n, -20, 0)
		b := uniformSlice(rng, n, -20, 0)
		got := LogAddExp(a, b)
		require.Len(t, got, n)
		for i := range got {
			want := stdmath.Log(stdmath.Exp(a[i]) + stdmath.Exp(b[i]))
			assert.InDelta(t, want, got[i], 1e-12, "n=%d i=%d", n, i)
		}
	}
}

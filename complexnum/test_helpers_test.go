package complexnum_test

import (
	"math/cmplx"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvcomplex/complexnum"
)

// tol is the absolute tolerance used by most numeric assertions.
const tol = 1e-9

// fuzzRounds is the number of random values per property test.
const fuzzRounds = 200

// assertClose checks that got and want denote the same point within eps on
// both rectangular coordinates.
func assertClose(t *testing.T, want, got complexnum.Number, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.AsRectangular(), got.AsRectangular()
	assert.InDelta(t, w.Real, g.Real, eps, msgAndArgs...)
	assert.InDelta(t, w.Imag, g.Imag, eps, msgAndArgs...)
}

// assertCloseBuiltin compares got against a math/cmplx reference value.
func assertCloseBuiltin(t *testing.T, want complex128, got complexnum.Number, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	assertClose(t, complexnum.FromComplex128(want), got, eps, msgAndArgs...)
}

// relEps scales eps by the magnitude of the reference value so large results
// are compared relatively.
func relEps(want complex128, eps float64) float64 {
	if m := cmplx.Abs(want); m > 1 {
		return eps * m
	}

	return eps
}

// newFuzzer returns a gofuzz instance producing finite values with
// components in [−span, span), never exactly the origin.
func newFuzzer(span float64) *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(
		func(z *complexnum.Rectangular, c fuzz.Continue) {
			*z = complexnum.Rectangular{}
			for z.IsZero() {
				z.Real = (c.Float64()*2 - 1) * span
				z.Imag = (c.Float64()*2 - 1) * span
			}
		},
		func(z *complexnum.Polar, c fuzz.Continue) {
			z.Module = c.Float64()*span + 1e-3
			z.Argument = (c.Float64()*2 - 1) * 3 * span
		},
	)
}

package complexnum_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcomplex/angle"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

// samples are non-degenerate points in every quadrant and on the axes.
var samples = []complexnum.Rectangular{
	{Real: 1, Imag: 2},
	{Real: -0.5, Imag: 1.5},
	{Real: -2, Imag: -0.25},
	{Real: 0.75, Imag: -3},
	{Real: 0, Imag: 1},
	{Real: -4, Imag: 0},
	{Real: 2.5, Imag: 0},
}

// TestExp_AgainstCmplx compares both representations with math/cmplx.
func TestExp_AgainstCmplx(t *testing.T) {
	for _, z := range samples {
		ref := cmplx.Exp(z.Complex128())
		assertCloseBuiltin(t, ref, z.Exp(), relEps(ref, tol), "rect exp %v", z)
		assertCloseBuiltin(t, ref, z.AsPolar().Exp(), relEps(ref, tol), "polar exp %v", z)
	}
}

// TestLn_AgainstCmplx compares the principal logarithm with math/cmplx.
func TestLn_AgainstCmplx(t *testing.T) {
	for _, z := range samples {
		ref := cmplx.Log(z.Complex128())
		assertCloseBuiltin(t, ref, z.Ln(), tol, "rect ln %v", z)
		assertCloseBuiltin(t, ref, z.AsPolar().Ln(), tol, "polar ln %v", z)
	}
}

// TestLn_UsesPrincipalArgument: an unreduced or negative-module polar value
// has the same logarithm as its canonical form.
func TestLn_UsesPrincipalArgument(t *testing.T) {
	wound := complexnum.NewPolar(2, 0.5+3*angle.TwoPi)
	assertClose(t, complexnum.NewRectangular(math.Ln2, 0.5), wound.Ln(), tol)

	negative := complexnum.NewPolar(-2, 0)
	assertClose(t, complexnum.NewRectangular(math.Ln2, angle.Pi), negative.Ln(), tol)
}

// TestLn_Zero propagates −Inf instead of failing.
func TestLn_Zero(t *testing.T) {
	l := complexnum.Zero.Ln()
	assert.True(t, math.IsInf(l.Real, -1))
	assert.Equal(t, 0.0, l.Imag)

	pl := complexnum.Polar{}.Ln()
	assert.True(t, math.IsInf(pl.Module, 1))
	assert.Equal(t, angle.Pi, pl.Argument)
	assert.Equal(t, l, pl.AsRectangular(), "both forms give -Inf + 0j")
}

// TestLog covers the real and complex base forms.
func TestLog(t *testing.T) {
	assertClose(t, complexnum.NewRectangular(2, 0), complexnum.FromScalar(100).Log10(), 1e-12)
	assertClose(t, complexnum.NewRectangular(10, 0), complexnum.FromScalar(1024).Log2(), 1e-12)
	assertClose(t, complexnum.NewRectangular(3, 0), complexnum.NewPolar(8, 0).Log2(), 1e-12)

	z := complexnum.NewRectangular(3, -1)
	base := complexnum.NewRectangular(1, 1)
	ref := cmplx.Log(z.Complex128()) / cmplx.Log(base.Complex128())
	assertCloseBuiltin(t, ref, z.Log(base), tol)
	assertCloseBuiltin(t, ref, z.AsPolar().Log(base.AsPolar()), tol)
}

// TestPowi covers integer powers including negative exponents.
func TestPowi(t *testing.T) {
	z := complexnum.NewRectangular(1, 1)
	assertClose(t, complexnum.NewRectangular(0, 2), z.Powi(2), 1e-15)
	assertClose(t, complexnum.NewRectangular(-4, 0), z.Powi(4), 1e-14)
	assertClose(t, z.Inverse(), z.Powi(-1), 1e-15)
	assertClose(t, complexnum.One, z.Powi(0), 0)

	p := complexnum.NewPolar(2, 0.3).Powi(3)
	assert.InDelta(t, 8.0, p.Module, 1e-15)
	assert.InDelta(t, 0.9, p.Argument, 1e-15)
}

// TestPowf_PrincipalBranch: z^(1/2) is the principal square root.
func TestPowf_PrincipalBranch(t *testing.T) {
	for _, z := range samples {
		ref := cmplx.Sqrt(z.Complex128())
		assertCloseBuiltin(t, ref, z.Powf(0.5), tol, "sqrt of %v", z)
	}
	// negative module is normalized before the fractional power
	assertClose(t, complexnum.NewRectangular(0, 2), complexnum.NewPolar(-4, 0).Powf(0.5), 1e-12)
}

// TestPowc_Fuzz compares the complex power with math/cmplx.Pow.
func TestPowc_Fuzz(t *testing.T) {
	f := newFuzzer(3)
	var base, exp complexnum.Rectangular
	for i := 0; i < fuzzRounds; i++ {
		f.Fuzz(&base)
		f.Fuzz(&exp)
		ref := cmplx.Pow(base.Complex128(), exp.Complex128())
		eps := relEps(ref, tol)
		assertCloseBuiltin(t, ref, base.Powc(exp), eps, "%v ^ %v", base, exp)
		assertCloseBuiltin(t, ref, base.AsPolar().Powc(exp.AsPolar()), eps, "%v ^ %v (polar)", base, exp)
	}
}

// TestPowc_ZeroBase pins the zero-base conventions.
func TestPowc_ZeroBase(t *testing.T) {
	zero := complexnum.Polar{}
	assert.Equal(t, complexnum.NewPolar(1, 0), zero.Powc(complexnum.Zero))
	assert.Equal(t, complexnum.Polar{}, zero.Powc(complexnum.NewRectangular(2, 1)))
	assert.True(t, math.IsInf(zero.Powc(complexnum.Scalar(-1)).Module, 1))
	assert.True(t, complexnum.IsInf(complexnum.Zero.Powc(complexnum.NewRectangular(-1, 1))))
}

// TestPowc_RealExponentMatchesPowf avoids the ln term for real exponents.
func TestPowc_RealExponentMatchesPowf(t *testing.T) {
	z := complexnum.NewPolar(3, 2)
	assert.Equal(t, z.Powf(1.5), z.Powc(complexnum.Scalar(1.5)))
}

// TestExpf computes base^z for a real base.
func TestExpf(t *testing.T) {
	assertClose(t, complexnum.NewRectangular(8, 0), complexnum.FromScalar(3).Expf(2), 1e-12)

	z := complexnum.NewRectangular(0.5, 2)
	ref := cmplx.Pow(complex(10, 0), z.Complex128())
	assertCloseBuiltin(t, ref, z.Expf(10), relEps(ref, tol))
	assertCloseBuiltin(t, ref, z.AsPolar().Expf(10), relEps(ref, tol))
}

// TestRoot_InvalidCount: n < 1 is a domain error, not an empty success.
func TestRoot_InvalidCount(t *testing.T) {
	z := complexnum.NewRectangular(1, 1)
	for _, n := range []int{0, -1, -7, complexnum.MaxRootCount + 1, math.MaxInt} {
		roots, err := z.Root(n)
		assert.ErrorIs(t, err, complexnum.ErrInvalidRootCount, "n=%d", n)
		assert.Nil(t, roots)

		proots, err := z.AsPolar().Root(n)
		assert.True(t, errors.Is(err, complexnum.ErrInvalidRootCount), "polar n=%d", n)
		assert.Nil(t, proots)
	}
}

// TestRoot_One returns the normalized value itself.
func TestRoot_One(t *testing.T) {
	roots, err := complexnum.NewPolar(-2, 0).Root(1)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, complexnum.NewPolar(2, angle.Pi), roots[0])
}

// TestRoot_CountSpacingModule_Fuzz: n distinct roots, equal moduli
// |z|^(1/n), arguments 2π/n apart, and every root raised to n gives z back.
func TestRoot_CountSpacingModule_Fuzz(t *testing.T) {
	f := newFuzzer(10)
	var z complexnum.Rectangular
	var n8 uint8
	for i := 0; i < fuzzRounds; i++ {
		f.Fuzz(&z)
		f.Fuzz(&n8)
		n := int(n8%7) + 2 // 2..8

		roots, err := z.AsPolar().Root(n)
		require.NoError(t, err)
		require.Len(t, roots, n)

		wantMod := math.Pow(z.Module(), 1/float64(n))
		step := angle.TwoPi / float64(n)
		for k, r := range roots {
			assert.InDelta(t, wantMod, r.Module, 1e-12)
			if k > 0 {
				assert.InDelta(t, step, r.Argument-roots[k-1].Argument, 1e-12)
			}
			assertClose(t, z, r.Powi(n), 1e-9*math.Max(1, z.Module()), "root %d of %v", k, z)
			for j := 0; j < k; j++ {
				assert.False(t, complexnum.ApproxEqual(r, roots[j], complexnum.WithEpsilon(1e-12)), "roots %d and %d coincide", j, k)
			}
		}
	}
}

// TestRoot_Order: k = 0 is the principal root and order is by increasing k.
func TestRoot_Order(t *testing.T) {
	roots, err := complexnum.FromScalar(8).Root(3)
	require.NoError(t, err)
	assertClose(t, complexnum.NewRectangular(2, 0), roots[0], 1e-12)
	assertClose(t, complexnum.NewRectangular(-1, math.Sqrt(3)), roots[1], 1e-12)
	assertClose(t, complexnum.NewRectangular(-1, -math.Sqrt(3)), roots[2], 1e-12)
}

// TestSqrt of −4 yields 2j then −2j.
func TestSqrt(t *testing.T) {
	roots, err := complexnum.FromScalar(-4).Sqrt()
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assertClose(t, complexnum.NewRectangular(0, 2), roots[0], 1e-12)
	assertClose(t, complexnum.NewRectangular(0, -2), roots[1], 1e-12)

	proots, err := complexnum.NewPolar(9, 1).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, complexnum.NewPolar(3, 0.5), proots[0])
}

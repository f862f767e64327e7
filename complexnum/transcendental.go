package complexnum

import (
	"math"

	"github.com/katalvlaran/lvcomplex/angle"
)

// Exponential, logarithmic, power and root functions.
//
// Closed forms live on the representation where they are natural: Exp on
// Rectangular (and a direct polar form), powers and roots on Polar. The
// other representation delegates through a conversion. Branch-sensitive
// functions work on the principal value: Module ≥ 0, Argument ∈ (−π, π].

// Exp returns e^z = e^Real·(cos Imag + j·sin Imag).
func (z Rectangular) Exp() Rectangular {
	e := math.Exp(z.Real)
	s, c := math.Sincos(z.Imag)

	return Rectangular{Real: e * c, Imag: e * s}
}

// Ln returns the principal natural logarithm: ln|z| + Arg(z)·j.
// Ln of zero has a −Inf real part.
func (z Rectangular) Ln() Rectangular {
	p := z.AsPolar()

	return Rectangular{Real: math.Log(p.Module), Imag: p.Argument}
}

// Log returns the logarithm of z in the given base, Ln(z) / Ln(base),
// using complex division.
func (z Rectangular) Log(base Number) Rectangular {
	return z.Ln().Div(base.AsRectangular().Ln())
}

// Log10 returns the base-10 logarithm of z.
func (z Rectangular) Log10() Rectangular { return z.Log(Scalar(10)) }

// Log2 returns the base-2 logarithm of z.
func (z Rectangular) Log2() Rectangular { return z.Log(Scalar(2)) }

// Powi returns z raised to an integer power.
func (z Rectangular) Powi(n int) Rectangular { return z.AsPolar().Powi(n).AsRectangular() }

// Powf returns the principal value of z raised to a real power.
func (z Rectangular) Powf(p float64) Rectangular { return z.AsPolar().Powf(p).AsRectangular() }

// Powc returns the principal value of z raised to a complex power.
func (z Rectangular) Powc(w Number) Rectangular { return z.AsPolar().Powc(w).AsRectangular() }

// Expf returns base^z for a real base.
func (z Rectangular) Expf(base float64) Rectangular { return z.AsPolar().Expf(base).AsRectangular() }

// Root returns the n n-th roots of z in increasing k order; see Polar.Root.
func (z Rectangular) Root(n int) ([]Rectangular, error) {
	roots, err := z.AsPolar().Root(n)
	if err != nil {
		return nil, err
	}
	out := make([]Rectangular, len(roots))
	for k, r := range roots {
		out[k] = r.AsRectangular()
	}

	return out, nil
}

// Sqrt returns both square roots of z, principal root first.
func (z Rectangular) Sqrt() ([]Rectangular, error) { return z.Root(2) }

// Exp returns e^z in closed polar form: with z = m·e^(aj) = m·cos a + (m·sin a)j,
// e^z has module e^(m·cos a) and argument m·sin a. No round trip through
// Rectangular is needed.
func (z Polar) Exp() Polar {
	s, c := math.Sincos(z.Argument)

	return Polar{Module: math.Exp(z.Module * c), Argument: z.Module * s}
}

// Ln returns the principal natural logarithm of z in polar form.
// The argument used is the principal one, not the stored field.
// Ln of zero is Polar{+Inf, π}, which converts back to −Inf + 0j.
func (z Polar) Ln() Polar {
	p := z.Normalize()

	return Rectangular{Real: math.Log(p.Module), Imag: p.Argument}.AsPolar()
}

// Log returns Ln(z) / Ln(base) in polar form.
func (z Polar) Log(base Number) Polar {
	return z.Ln().Div(base.AsRectangular().Ln())
}

// Log10 returns the base-10 logarithm of z.
func (z Polar) Log10() Polar { return z.Log(Scalar(10)) }

// Log2 returns the base-2 logarithm of z.
func (z Polar) Log2() Polar { return z.Log(Scalar(2)) }

// Powi returns z^n: module^n, argument·n.
func (z Polar) Powi(n int) Polar {
	p := z.Normalize()

	return Polar{Module: math.Pow(p.Module, float64(n)), Argument: p.Argument * float64(n)}
}

// Powf returns the principal value of z^p: module^p, argument·p, taken on the
// normalized form so that fractional powers land on the principal branch.
func (z Polar) Powf(p float64) Polar {
	n := z.Normalize()

	return Polar{Module: math.Pow(n.Module, p), Argument: n.Argument * p}
}

// Powc returns the principal value of z^w = exp(w·ln z):
//
//	module   = m^re(w) · e^(−im(w)·a)
//	argument = re(w)·a + im(w)·ln(m)
//
// A zero base follows the conventions of math/cmplx.Pow: z^w is 1 when
// re(w) == 0, 0 when re(w) > 0, and infinite when re(w) < 0.
func (z Polar) Powc(w Number) Polar {
	p := z.Normalize()
	e := w.AsRectangular()
	if p.Module == 0 {
		switch {
		case e.Real == 0:
			return Polar{Module: 1}
		case e.Real > 0:
			return Polar{}
		case e.Real < 0 && e.Imag == 0:
			return Polar{Module: math.Inf(1)}
		case e.Real < 0:
			return Polar{Module: math.Inf(1), Argument: angle.Pi / 4}
		}
	}
	m := math.Pow(p.Module, e.Real)
	a := e.Real * p.Argument
	if e.Imag != 0 {
		m *= math.Exp(-e.Imag * p.Argument)
		a += e.Imag * math.Log(p.Module)
	}

	return Polar{Module: m, Argument: a}
}

// Expf returns base^z = exp(z·ln base) for a real base:
// module base^re(z), argument im(z)·ln(base). A non-positive base
// yields NaN components.
func (z Polar) Expf(base float64) Polar {
	r := z.AsRectangular()

	return Polar{Module: math.Pow(base, r.Real), Argument: r.Imag * math.Log(base)}
}

// MaxRootCount is the largest n accepted by Root.
const MaxRootCount = 1 << 20

// Root returns the n n-th roots of z.
//
// Implementation:
//   - Stage 1: reject n < 1 and n > MaxRootCount with ErrInvalidRootCount.
//   - Stage 2: normalize z so a is its principal argument.
//   - Stage 3: every root has module |z|^(1/n); root k has argument
//     (a + 2πk)/n for k = 0..n−1, in that order.
//
// Root k = 0 is the principal root. Consecutive roots are 2π/n apart.
func (z Polar) Root(n int) ([]Polar, error) {
	if n < 1 || n > MaxRootCount {
		return nil, complexErrorf("Root", ErrInvalidRootCount)
	}
	p := z.Normalize()
	fn := float64(n)
	m := math.Pow(p.Module, 1/fn)

	out := make([]Polar, n)
	for k := 0; k < n; k++ {
		out[k] = Polar{Module: m, Argument: (p.Argument + angle.TwoPi*float64(k)) / fn}
	}

	return out, nil
}

// Sqrt returns both square roots of z, principal root first.
func (z Polar) Sqrt() ([]Polar, error) { return z.Root(2) }

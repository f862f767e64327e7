package complexnum

import (
	"math"

	"github.com/katalvlaran/lvcomplex/angle"
)

// Arithmetic.
//
// Every binary method takes any Number on the right and returns the
// receiver's representation, so mixed expressions read left to right:
// Polar.Mul(Rectangular) is Polar, Rectangular.Mul(Polar) is Rectangular.
//
// Addition and subtraction have no closed form in polar coordinates and
// always go through Cartesian components. Multiplication and division use
// the natural closed form of each representation.

// Add returns z + w.
func (z Rectangular) Add(w Number) Rectangular {
	o := w.AsRectangular()

	return Rectangular{Real: z.Real + o.Real, Imag: z.Imag + o.Imag}
}

// Sub returns z − w.
func (z Rectangular) Sub(w Number) Rectangular {
	o := w.AsRectangular()

	return Rectangular{Real: z.Real - o.Real, Imag: z.Imag - o.Imag}
}

// Mul returns z·w = (r1·r2 − i1·i2) + (r1·i2 + i1·r2)j.
func (z Rectangular) Mul(w Number) Rectangular {
	o := w.AsRectangular()

	return Rectangular{
		Real: z.Real*o.Real - z.Imag*o.Imag,
		Imag: z.Real*o.Imag + z.Imag*o.Real,
	}
}

// Div returns z / w.
//
// Implementation:
//   - Stage 1: scale by the larger of |r2| and |i2| (Smith's method), so
//     the denominator r2² + i2² is never formed and cannot overflow or
//     underflow for finite nonzero divisors.
//   - Stage 2: a zero divisor yields signed infinities for a non-NaN
//     dividend, as builtin complex128 division does.
func (z Rectangular) Div(w Number) Rectangular {
	a, b := z.Real, z.Imag
	o := w.AsRectangular()
	c, d := o.Real, o.Imag

	var e, f float64
	if math.Abs(c) >= math.Abs(d) {
		ratio := d / c
		den := c + ratio*d
		e = (a + b*ratio) / den
		f = (b - a*ratio) / den
	} else {
		ratio := c / d
		den := d + ratio*c
		e = (a*ratio + b) / den
		f = (b*ratio - a) / den
	}

	if math.IsNaN(e) && math.IsNaN(f) && c == 0 && d == 0 && (!math.IsNaN(a) || !math.IsNaN(b)) {
		inf := math.Copysign(math.Inf(1), c)
		e, f = inf*a, inf*b
	}

	return Rectangular{Real: e, Imag: f}
}

// Neg returns −z.
func (z Rectangular) Neg() Rectangular {
	return Rectangular{Real: -z.Real, Imag: -z.Imag}
}

// Conjugate returns Real − Imag·j.
func (z Rectangular) Conjugate() Rectangular {
	return Rectangular{Real: z.Real, Imag: -z.Imag}
}

// Inverse returns 1/z.
func (z Rectangular) Inverse() Rectangular { return One.Div(z) }

// Add returns z + w, computed on Cartesian components and converted back.
func (z Polar) Add(w Number) Polar {
	return z.AsRectangular().Add(w).AsPolar()
}

// Sub returns z − w, computed on Cartesian components and converted back.
func (z Polar) Sub(w Number) Polar {
	return z.AsRectangular().Sub(w).AsPolar()
}

// Mul returns z·w: modules multiply, arguments add.
func (z Polar) Mul(w Number) Polar {
	o := w.AsPolar()

	return Polar{Module: z.Module * o.Module, Argument: z.Argument + o.Argument}
}

// Div returns z / w: modules divide, arguments subtract.
// A zero-module divisor yields an infinite or NaN module per IEEE division.
func (z Polar) Div(w Number) Polar {
	o := w.AsPolar()

	return Polar{Module: z.Module / o.Module, Argument: z.Argument - o.Argument}
}

// Neg returns −z by rotating half a turn while keeping the module.
// The rule is fixed: add π when Argument ≤ 0, subtract π when Argument > 0,
// so a principal argument stays in (−π, π].
func (z Polar) Neg() Polar {
	a := z.Argument
	if a > 0 {
		a -= angle.Pi
	} else {
		a += angle.Pi
	}

	return Polar{Module: z.Module, Argument: a}
}

// Conjugate mirrors z across the real axis.
func (z Polar) Conjugate() Polar {
	return Polar{Module: z.Module, Argument: -z.Argument}
}

// Inverse returns 1/z = (1/Module)·exp(−Argument·j).
func (z Polar) Inverse() Polar {
	return Polar{Module: 1 / z.Module, Argument: -z.Argument}
}

// Sum folds Add over its arguments in Cartesian form.
func Sum(first Number, rest ...Number) Rectangular {
	acc := first.AsRectangular()
	for _, n := range rest {
		acc = acc.Add(n)
	}

	return acc
}

// Product folds Mul over its arguments in polar form.
func Product(first Number, rest ...Number) Polar {
	acc := first.AsPolar()
	for _, n := range rest {
		acc = acc.Mul(n)
	}

	return acc
}

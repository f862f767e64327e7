package complexnum

import (
	"math"

	"github.com/katalvlaran/lvcomplex/angle"
)

// AsRectangular returns z unchanged.
func (z Rectangular) AsRectangular() Rectangular { return z }

// AsPolar converts z to exponential form.
//
// Implementation:
//   - Module = hypot(Real, Imag), free of intermediate overflow.
//   - On the imaginary axis (Real == ±0) the argument is +π/2 for Imag > 0,
//     −π/2 for Imag < 0 and 0 at the origin. atan2 alone would return π for
//     (−0, 0), so the axis is decided explicitly.
//   - Elsewhere Argument = atan2(Imag, Real), with −π folded onto +π.
//
// The result always has Module ≥ 0 and Argument ∈ (−π, π] for finite input.
func (z Rectangular) AsPolar() Polar {
	return Polar{Module: math.Hypot(z.Real, z.Imag), Argument: rectArgument(z.Real, z.Imag)}
}

func rectArgument(re, im float64) float64 {
	if re == 0 {
		switch {
		case im > 0:
			return angle.HalfPi
		case im < 0:
			return -angle.HalfPi
		case math.IsNaN(im):
			return math.NaN()
		default:
			return 0
		}
	}
	a := math.Atan2(im, re)
	if a == -angle.Pi {
		a = angle.Pi
	}

	return a
}

// AsRectangular converts z to Cartesian form: Module·cos(Argument),
// Module·sin(Argument). Defined for every input.
//
// An infinite module on an axis argument (0, ±π/2, ±π) lands on that axis
// with a zero cross component, the inverse of the axis rule in
// Rectangular.AsPolar; Inf·sin(π) would otherwise read as Inf.
func (z Polar) AsRectangular() Rectangular {
	if math.IsInf(z.Module, 0) {
		if r, ok := infiniteOnAxis(z.Module, z.Argument); ok {
			return r
		}
	}
	s, c := math.Sincos(z.Argument)

	return Rectangular{Real: z.Module * c, Imag: z.Module * s}
}

func infiniteOnAxis(m, a float64) (Rectangular, bool) {
	switch a {
	case 0:
		return Rectangular{Real: m}, true
	case angle.Pi, -angle.Pi:
		return Rectangular{Real: -m}, true
	case angle.HalfPi:
		return Rectangular{Imag: m}, true
	case -angle.HalfPi:
		return Rectangular{Imag: -m}, true
	}

	return Rectangular{}, false
}

// AsPolar returns z unchanged (no normalization).
func (z Polar) AsPolar() Polar { return z }

// Normalize returns the canonical form of z: Module ≥ 0 and
// Argument ∈ (−π, π]. A negative module is absorbed as a half-turn of
// the argument; a zero module gets argument 0.
func (z Polar) Normalize() Polar {
	m, a := z.Module, z.Argument
	if m < 0 {
		m, a = -m, a+angle.Pi
	}
	if m == 0 {
		return Polar{}
	}

	return Polar{Module: m, Argument: angle.Normalize(a)}
}

// AsRectangular returns s as (s, 0).
func (s Scalar) AsRectangular() Rectangular { return Rectangular{Real: float64(s)} }

// AsPolar returns s as (|s|, 0) for s ≥ 0 and (|s|, π) for s < 0.
func (s Scalar) AsPolar() Polar { return s.AsRectangular().AsPolar() }

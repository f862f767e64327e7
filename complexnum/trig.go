package complexnum

import "math"

// Trigonometric and hyperbolic functions of a complex argument.
//
// The identities are evaluated on Rectangular, with z = x + yj:
//
//	cos z  = cos x·cosh y − j·sin x·sinh y
//	sin z  = sin x·cosh y + j·cos x·sinh y
//	cosh z = cosh x·cos y + j·sinh x·sin y
//	sinh z = sinh x·cos y + j·cosh x·sin y
//	tan z  = sin z / cos z
//	tanh z = sinh z / cosh z
//
// Polar methods convert to Rectangular, apply the identity and convert back.
//
// Tan and Tanh fail with ErrPole when the denominator's module is at or
// below the pole tolerance (DefaultPoleTolerance, see WithPoleTolerance).

// Cos returns the cosine of z.
func (z Rectangular) Cos() Rectangular {
	s, c := math.Sincos(z.Real)

	return Rectangular{Real: c * math.Cosh(z.Imag), Imag: -s * math.Sinh(z.Imag)}
}

// Sin returns the sine of z.
func (z Rectangular) Sin() Rectangular {
	s, c := math.Sincos(z.Real)

	return Rectangular{Real: s * math.Cosh(z.Imag), Imag: c * math.Sinh(z.Imag)}
}

// Tan returns the tangent of z, or ErrPole where cos z vanishes.
func (z Rectangular) Tan(opts ...Option) (Rectangular, error) {
	q, err := quotientAwayFromPole(z.Sin(), z.Cos(), gatherOptions(opts...))
	if err != nil {
		return Rectangular{}, complexErrorf("Tan", err)
	}

	return q, nil
}

// Cosh returns the hyperbolic cosine of z.
func (z Rectangular) Cosh() Rectangular {
	s, c := math.Sincos(z.Imag)

	return Rectangular{Real: math.Cosh(z.Real) * c, Imag: math.Sinh(z.Real) * s}
}

// Sinh returns the hyperbolic sine of z.
func (z Rectangular) Sinh() Rectangular {
	s, c := math.Sincos(z.Imag)

	return Rectangular{Real: math.Sinh(z.Real) * c, Imag: math.Cosh(z.Real) * s}
}

// Tanh returns the hyperbolic tangent of z, or ErrPole where cosh z vanishes.
func (z Rectangular) Tanh(opts ...Option) (Rectangular, error) {
	q, err := quotientAwayFromPole(z.Sinh(), z.Cosh(), gatherOptions(opts...))
	if err != nil {
		return Rectangular{}, complexErrorf("Tanh", err)
	}

	return q, nil
}

// quotientAwayFromPole divides num by den unless den lies within the pole
// tolerance of zero.
func quotientAwayFromPole(num, den Rectangular, o Options) (Rectangular, error) {
	if math.Hypot(den.Real, den.Imag) <= o.poleTolerance {
		return Rectangular{}, ErrPole
	}

	return num.Div(den), nil
}

// Cos returns the cosine of z.
func (z Polar) Cos() Polar { return z.AsRectangular().Cos().AsPolar() }

// Sin returns the sine of z.
func (z Polar) Sin() Polar { return z.AsRectangular().Sin().AsPolar() }

// Tan returns the tangent of z, or ErrPole where cos z vanishes.
func (z Polar) Tan(opts ...Option) (Polar, error) {
	r, err := z.AsRectangular().Tan(opts...)
	if err != nil {
		return Polar{}, err
	}

	return r.AsPolar(), nil
}

// Cosh returns the hyperbolic cosine of z.
func (z Polar) Cosh() Polar { return z.AsRectangular().Cosh().AsPolar() }

// Sinh returns the hyperbolic sine of z.
func (z Polar) Sinh() Polar { return z.AsRectangular().Sinh().AsPolar() }

// Tanh returns the hyperbolic tangent of z, or ErrPole where cosh z vanishes.
func (z Polar) Tanh(opts ...Option) (Polar, error) {
	r, err := z.AsRectangular().Tanh(opts...)
	if err != nil {
		return Polar{}, err
	}

	return r.AsPolar(), nil
}

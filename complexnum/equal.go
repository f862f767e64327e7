package complexnum

import "math"

// Equal reports whether a and b denote the same point: their rectangular
// coordinates are equal under IEEE float equality. Raw polar fields are never
// compared, so Polar{1, 0} equals Rectangular{1, 0}, and any two zero-module
// values are equal whatever their arguments.
func Equal(a, b Number) bool {
	x, y := a.AsRectangular(), b.AsRectangular()

	return x.Real == y.Real && x.Imag == y.Imag
}

// ApproxEqual reports whether a and b are within an absolute tolerance on
// both rectangular coordinates (DefaultEpsilon unless WithEpsilon is given).
func ApproxEqual(a, b Number, opts ...Option) bool {
	o := gatherOptions(opts...)
	x, y := a.AsRectangular(), b.AsRectangular()

	return math.Abs(x.Real-y.Real) <= o.eps && math.Abs(x.Imag-y.Imag) <= o.eps
}

// Equal reports whether z and w denote the same point; see Equal.
func (z Rectangular) Equal(w Number) bool { return Equal(z, w) }

// Equal reports whether z and w denote the same point; see Equal.
func (z Polar) Equal(w Number) bool { return Equal(z, w) }

// IsZero reports whether z is the origin.
func (z Rectangular) IsZero() bool { return z.Real == 0 && z.Imag == 0 }

// IsZero reports whether z is the origin, i.e. its module is zero.
func (z Polar) IsZero() bool { return z.Module == 0 }

// IsNaN reports whether either rectangular coordinate of n is NaN
// and neither is infinite.
func IsNaN(n Number) bool {
	r := n.AsRectangular()
	if math.IsInf(r.Real, 0) || math.IsInf(r.Imag, 0) {
		return false
	}

	return math.IsNaN(r.Real) || math.IsNaN(r.Imag)
}

// IsInf reports whether either rectangular coordinate of n is infinite.
func IsInf(n Number) bool {
	r := n.AsRectangular()

	return math.IsInf(r.Real, 0) || math.IsInf(r.Imag, 0)
}

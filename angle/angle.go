package angle

import "math"

// Angle constants in radians.
const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi

	// HalfPi is π/2, the argument of the positive imaginary axis.
	HalfPi = math.Pi / 2

	// TwoPi is one full turn, the period of every argument.
	TwoPi = 2 * math.Pi
)

// degPerRad converts radians to degrees.
const degPerRad = 180 / math.Pi

// Normalize reduces a to the principal branch (−π, π].
//
// Implementation:
//   - Stage 1: NaN and ±Inf have no principal value; return NaN.
//   - Stage 2: math.Remainder yields the exact residue in [−π, π].
//   - Stage 3: fold the closed lower bound −π onto +π.
//
// Complexity: O(1).
func Normalize(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}
	r := math.Remainder(a, TwoPi)
	if r <= -Pi {
		r += TwoPi
	}

	return r
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * degPerRad }

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg / degPerRad }

// Equivalent reports whether a and b denote the same direction, that is
// whether they differ by a multiple of 2π within eps.
func Equivalent(a, b, eps float64) bool {
	d := Normalize(a - b)
	if math.IsNaN(d) {
		return false
	}

	return math.Abs(d) <= eps
}

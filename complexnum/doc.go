// Package complexnum implements complex numbers in two interconvertible
// representations and the full arithmetic, exponential, logarithmic, root,
// trigonometric and hyperbolic function set over both.
//
// 🚀 Representations:
//
//	Rectangular{Real, Imag}      Cartesian form, real + imag·j
//	Polar{Module, Argument}      exponential form, module·exp(argument·j)
//
// Both are plain value types. Every operation returns a new value; nothing is
// shared or mutated, so values may be passed between goroutines freely.
//
// ✨ Mixed operands without casts:
//
//	Every binary operation accepts any Number as its right operand (a
//	Rectangular, a Polar or a bare Scalar) and returns a value in the
//	representation of its receiver:
//
//	  p := complexnum.NewPolar(2, 1)
//	  r := complexnum.NewRectangular(2.3, 5.2)
//	  p.Mul(r)                    // Polar
//	  r.Mul(p)                    // Rectangular
//	  r.Add(complexnum.Scalar(1)) // Rectangular
//
// Conversion rules:
//
//   - Rectangular → Polar: module = hypot(real, imag); argument = atan2(imag, real)
//     folded into (−π, π]. On the imaginary axis the argument is ±π/2 by the
//     sign of imag; the origin gets argument 0.
//   - Polar → Rectangular: real = module·cos(argument), imag = module·sin(argument).
//   - Polar values are stored as given: negative modules and unreduced arguments
//     are accepted. Branch-sensitive functions (Ln, Log, Powf, Powc, Root)
//     work on the normalized form (module ≥ 0, argument ∈ (−π, π]).
//
// Equality:
//
//	Equal compares rectangular coordinates, never raw polar fields, so
//	Polar{1, 0}, Polar{1, 2π} and Rectangular{1, 0} all denote (and equal)
//	the same point up to rounding. ApproxEqual adds a tolerance.
//
// Errors:
//
//   - ErrInvalidRootCount: Root(n) with n < 1 or n > MaxRootCount.
//   - ErrPole: Tan/Tanh where the denominator vanishes.
//   - ErrSyntax: text that does not parse as a complex value.
//
// Division by zero and the logarithm of zero are NOT errors: they yield
// IEEE ±Inf/NaN components, exactly as float64 arithmetic does.
//
// See example_test.go for runnable walkthroughs.
package complexnum

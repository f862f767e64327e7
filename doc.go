// Package lvcomplex is a complex-number toolkit in pure Go: two
// interconvertible representations, the full function set over both, and a
// small calculator built on top.
//
// 🚀 What is lvcomplex?
//
//	A value-type library where rectangular (real + imag·j) and polar
//	(module·exp(argument·j)) numbers combine freely:
//		• Conversion: hypot/atan2 one way, cos/sin the other, principal branch (−π, π]
//		• Arithmetic: add, sub, mul, div, neg, conjugate, inverse, on mixed operands
//		• Exponential family: exp, ln, log (any base), integer/real/complex powers
//		• Roots: all n n-th roots, principal first
//		• Trigonometric & hyperbolic: cos, sin, tan, cosh, sinh, tanh with pole detection
//		• Text & YAML: "3 - 4j", "5 · exp(0.93j)" and {real, imag} mappings
//
// ✨ Why choose lvcomplex?
//
//   - No casts: p.Mul(r) is Polar, r.Mul(p) is Rectangular
//   - Closed forms where they exist: polar Mul/Div/Powi/Root never leave polar
//   - Errors for domain failures (ErrPole, ErrInvalidRootCount), IEEE for the rest
//
// Packages:
//
//	angle/       principal-branch reduction, degree/radian helpers
//	complexnum/  Rectangular, Polar, Number and every operation
//	calc/        operations by name, YAML/TOML job documents, batch runs
//	cmd/cplx/    the command-line calculator
//	examples/    runnable programs (Euler identity, AC circuit, roots of unity)
//
// Quick example:
//
//	z := complexnum.NewRectangular(3, -4)
//	fmt.Println(z.AsPolar())          // 5 · exp(-0.9272952180016122j)
//	roots, _ := z.Root(2)             // both square roots, principal first
//
//	go install github.com/katalvlaran/lvcomplex/cmd/cplx@latest
//	cplx eval --form polar root 8 3
package lvcomplex

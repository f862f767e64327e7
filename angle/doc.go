// Package angle holds the scalar helpers shared by the complex-number
// packages: π constants, principal-branch reduction and degree/radian
// conversion.
//
// Principal branch:
//
//	Every argument produced by lvcomplex lies in the half-open interval
//	(−π, π]. Normalize maps any finite angle onto it; −π is folded onto +π.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcomplex/angle"
//
//	a := angle.Normalize(3 * angle.Pi) // π
//	d := angle.ToDegrees(angle.HalfPi) // 90
//
// All functions are pure and allocation-free.
package angle

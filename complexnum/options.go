// Package complexnum: functional configuration for tolerance-dependent
// operations. Only two knobs exist:
//   - eps: absolute tolerance used by ApproxEqual;
//   - poleTolerance: denominator module at or below which Tan/Tanh report ErrPole.
//
// Constructors panic on nonsensical values (programmer error); operations
// never panic on user input.

package complexnum

import (
	"fmt"
	"math"
)

// Numeric policy defaults.
const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultPoleTolerance bounds the denominator module treated as zero by
	// Tan and Tanh. float64 cos(π/2) is about 6.1e-17, so an exact zero test
	// would never fire.
	DefaultPoleTolerance = 1e-15
)

const (
	panicEpsilonInvalid       = "complexnum: WithEpsilon: eps must be finite, non-negative"
	panicPoleToleranceInvalid = "complexnum: WithPoleTolerance: tolerance must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps           float64
	poleTolerance float64
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if !validTolerance(eps) {
		panic(fmt.Sprintf("%s (got %v)", panicEpsilonInvalid, eps))
	}

	return func(o *Options) { o.eps = eps }
}

// WithPoleTolerance sets the denominator module at or below which Tan and
// Tanh return ErrPole. Zero means only an exact zero denominator is a pole.
// Panics if tol is negative, NaN or Inf.
func WithPoleTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(fmt.Sprintf("%s (got %v)", panicPoleToleranceInvalid, tol))
	}

	return func(o *Options) { o.poleTolerance = tol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		poleTolerance: DefaultPoleTolerance,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validTolerance(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

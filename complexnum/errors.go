// Package complexnum: sentinel error set.
// All operations return these sentinels (optionally wrapped with the
// operation name); callers match them with errors.Is. Numeric degeneracy
// (division by zero, logarithm of zero) is not an error and never reaches
// this file: it propagates as IEEE ±Inf/NaN.

package complexnum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRootCount is returned by Root when the number of roots is
	// < 1 or > MaxRootCount.
	ErrInvalidRootCount = errors.New("complexnum: root count out of range")

	// ErrPole indicates a function evaluated at a pole, e.g. Tan where
	// cos(z) vanishes or Tanh where cosh(z) vanishes.
	ErrPole = errors.New("complexnum: function has a pole at this value")

	// ErrSyntax indicates text that does not describe a complex value.
	ErrSyntax = errors.New("complexnum: invalid syntax")

	// ErrUnsupportedYAML indicates a YAML node kind that cannot hold a
	// complex value (sequences, aliases to such).
	ErrUnsupportedYAML = errors.New("complexnum: unsupported YAML node")
)

// complexErrorf tags err with the failing operation; errors.Is still matches
// the wrapped sentinel.
func complexErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

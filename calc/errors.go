// Package calc: sentinel error set.
// Every message is prefixed with "calc: ". Errors from complexnum pass
// through unchanged apart from the operation context.

package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation indicates a name that is not in the Registry.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrArity indicates a wrong number of arguments for an operation.
	ErrArity = errors.New("calc: wrong number of arguments")

	// ErrBadParameter indicates an integer or real parameter that does not parse.
	ErrBadParameter = errors.New("calc: bad parameter")

	// ErrUnknownForm indicates a representation name other than rectangular or polar.
	ErrUnknownForm = errors.New("calc: unknown form")

	// ErrDuplicateOperation is returned by Register for a name already taken.
	ErrDuplicateOperation = errors.New("calc: operation already registered")

	// ErrInvalidOperation is returned by Register for an operation without a
	// name or without an implementation for both forms.
	ErrInvalidOperation = errors.New("calc: invalid operation")

	// ErrUnknownFormat indicates a job document format that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("calc: unknown document format")

	// ErrEmptyDocument indicates a job document without jobs.
	ErrEmptyDocument = errors.New("calc: document has no jobs")

	// ErrInvalidJob indicates a job entry without an operation.
	ErrInvalidJob = errors.New("calc: invalid job")

	// ErrUnknownField indicates a key in a job document that maps to nothing.
	ErrUnknownField = errors.New("calc: unknown field")
)

// calcErrorf tags err with the failing operation.
func calcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

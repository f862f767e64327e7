package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcomplex/complexnum"
)

// Form selects the representation an operation is evaluated in.
//
//   - FormRectangular: the receiver is converted with AsRectangular and the
//     Rectangular method runs. This is the zero value.
//   - FormPolar: the receiver is converted with AsPolar and the Polar
//     method runs.
type Form int

const (
	// FormRectangular evaluates on complexnum.Rectangular.
	FormRectangular Form = iota

	// FormPolar evaluates on complexnum.Polar.
	FormPolar
)

// String returns the canonical name of f.
func (f Form) String() string {
	switch f {
	case FormRectangular:
		return "rectangular"
	case FormPolar:
		return "polar"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm reads a representation name. Matching is case-insensitive;
// "rect", "r" and "cartesian" name FormRectangular, "p", "exp" and
// "exponential" name FormPolar.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "rect", "r", "cartesian":
		return FormRectangular, nil
	case "polar", "p", "exp", "exponential":
		return FormPolar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Form) MarshalText() ([]byte, error) {
	if f != FormRectangular && f != FormPolar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownForm, int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see ParseForm.
func (f *Form) UnmarshalText(text []byte) error {
	v, err := ParseForm(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// ParamKind tells Evaluate how to read a parameter after the receiver.
type ParamKind int

const (
	// ParamComplex is any text complexnum.Parse accepts.
	ParamComplex ParamKind = iota

	// ParamInt is a base-10 integer.
	ParamInt

	// ParamFloat is a real number.
	ParamFloat
)

// String returns a short name for k, used in error messages.
func (k ParamKind) String() string {
	switch k {
	case ParamComplex:
		return "complex"
	case ParamInt:
		return "int"
	case ParamFloat:
		return "real"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Param is one parsed parameter. Only the field matching its ParamKind is set.
type Param struct {
	Complex complexnum.Number
	Int     int
	Float   float64
}

// Input carries everything an operation needs besides its receiver.
type Input struct {
	// Params holds one entry per Operation.Params, in order.
	Params []Param

	// Options are forwarded to tolerance-dependent functions (Tan, Tanh).
	Options []complexnum.Option
}

// Operation is a named function with an implementation per representation.
//
// Fields:
//   - Name: registry key, lower case.
//   - Summary: one-line description for help output.
//   - Params: kinds of the arguments after the receiver.
//   - Rect, Polar: the implementations. Each returns one value for ordinary
//     functions and several for multi-valued ones (root, sqrt).
type Operation struct {
	Name    string
	Summary string
	Params  []ParamKind
	Rect    func(z complexnum.Rectangular, in Input) ([]complexnum.Number, error)
	Polar   func(z complexnum.Polar, in Input) ([]complexnum.Number, error)
}

// Arity returns the number of textual arguments, receiver included.
func (o Operation) Arity() int { return 1 + len(o.Params) }

// Usage renders the argument list, e.g. "root <z> <int>".
func (o Operation) Usage() string {
	var b strings.Builder
	b.WriteString(o.Name)
	b.WriteString(" <z>")
	for _, k := range o.Params {
		b.WriteString(" <")
		b.WriteString(k.String())
		b.WriteByte('>')
	}

	return b.String()
}

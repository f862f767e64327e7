package calc

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcomplex/complexnum"
)

// Registry maps operation names to Operations.
//
// Register is meant for construction time; Lookup and Evaluate never mutate
// and are safe for concurrent use once registration is done.
type Registry struct {
	ops  map[string]Operation
	opts []complexnum.Option
}

// NewRegistry returns an empty registry. opts are handed to every
// tolerance-dependent operation it evaluates.
func NewRegistry(opts ...complexnum.Option) *Registry {
	return &Registry{ops: make(map[string]Operation), opts: opts}
}

// Register adds op under its lower-cased name.
// Errors: ErrInvalidOperation, ErrDuplicateOperation.
func (r *Registry) Register(op Operation) error {
	name := strings.ToLower(strings.TrimSpace(op.Name))
	if name == "" || op.Rect == nil || op.Polar == nil {
		return calcErrorf("Register", fmt.Errorf("%w: %q", ErrInvalidOperation, op.Name))
	}
	if _, dup := r.ops[name]; dup {
		return calcErrorf("Register", fmt.Errorf("%w: %q", ErrDuplicateOperation, name))
	}
	op.Name = name
	r.ops[name] = op

	return nil
}

// Lookup returns the operation registered under name (case-insensitive).
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[strings.ToLower(strings.TrimSpace(name))]

	return op, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.ops))
}

// Len returns the number of registered operations.
func (r *Registry) Len() int { return len(r.ops) }

// Evaluate runs the named operation on textual arguments.
//
// Implementation:
//   - Stage 1: resolve the name (ErrUnknownOperation) and check the argument
//     count against Arity (ErrArity).
//   - Stage 2: parse the receiver with complexnum.Parse (ErrSyntax) and every
//     further argument by its ParamKind (ErrSyntax or ErrBadParameter).
//   - Stage 3: convert the receiver to form and call the matching
//     implementation (ErrUnknownForm for any other form).
//
// Errors produced by the operation itself (ErrPole, ErrInvalidRootCount) are
// returned wrapped with the operation name.
func (r *Registry) Evaluate(name string, form Form, args ...string) ([]complexnum.Number, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return nil, calcErrorf("Evaluate", fmt.Errorf("%w: %q", ErrUnknownOperation, name))
	}
	if len(args) != op.Arity() {
		return nil, calcErrorf(op.Name, fmt.Errorf("%w: want %d (%s), got %d", ErrArity, op.Arity(), op.Usage(), len(args)))
	}

	z, err := complexnum.Parse(args[0])
	if err != nil {
		return nil, calcErrorf(op.Name, err)
	}
	in := Input{Params: make([]Param, len(op.Params)), Options: r.opts}
	for i, kind := range op.Params {
		p, err := parseParam(kind, args[i+1])
		if err != nil {
			return nil, calcErrorf(op.Name, fmt.Errorf("argument %d: %w", i+2, err))
		}
		in.Params[i] = p
	}

	var out []complexnum.Number
	switch form {
	case FormRectangular:
		out, err = op.Rect(z.AsRectangular(), in)
	case FormPolar:
		out, err = op.Polar(z.AsPolar(), in)
	default:
		return nil, calcErrorf(op.Name, fmt.Errorf("%w: %d", ErrUnknownForm, int(form)))
	}
	if err != nil {
		return nil, calcErrorf(op.Name, err)
	}

	return out, nil
}

func parseParam(kind ParamKind, s string) (Param, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case ParamComplex:
		z, err := complexnum.Parse(s)
		if err != nil {
			return Param{}, err
		}

		return Param{Complex: z}, nil

	case ParamInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Param{}, fmt.Errorf("%w: %q is not an integer", ErrBadParameter, s)
		}

		return Param{Int: n}, nil

	case ParamFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Param{}, fmt.Errorf("%w: %q is not a real number", ErrBadParameter, s)
		}

		return Param{Float: f}, nil
	}

	return Param{}, fmt.Errorf("%w: unsupported kind %s", ErrBadParameter, kind)
}

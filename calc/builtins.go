package calc

import (
	"github.com/katalvlaran/lvcomplex/complexnum"
)

type (
	rect  = complexnum.Rectangular
	polar = complexnum.Polar
)

// DefaultRegistry returns a registry holding every complexnum operation:
//
//	arithmetic     add sub mul div neg conj inv
//	exponential    exp ln log log10 log2 powi powf powc expf
//	roots          root sqrt
//	trigonometric  cos sin tan cosh sinh tanh
//	inspection     abs arg convert
func DefaultRegistry(opts ...complexnum.Option) *Registry {
	r := NewRegistry(opts...)
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			// builtins are fixed; a failure here is a broken table
			panic(err)
		}
	}

	return r
}

func builtins() []Operation {
	return []Operation{
		binary("add", "z + w", rect.Add, polar.Add),
		binary("sub", "z - w", rect.Sub, polar.Sub),
		binary("mul", "z · w", rect.Mul, polar.Mul),
		binary("div", "z / w", rect.Div, polar.Div),
		unary("neg", "-z", rect.Neg, polar.Neg),
		unary("conj", "complex conjugate", rect.Conjugate, polar.Conjugate),
		unary("inv", "1 / z", rect.Inverse, polar.Inverse),

		unary("exp", "e^z", rect.Exp, polar.Exp),
		unary("ln", "principal natural logarithm", rect.Ln, polar.Ln),
		binary("log", "logarithm of z in base w", rect.Log, polar.Log),
		unary("log10", "base-10 logarithm", rect.Log10, polar.Log10),
		unary("log2", "base-2 logarithm", rect.Log2, polar.Log2),
		{
			Name: "powi", Summary: "z^n for an integer n", Params: []ParamKind{ParamInt},
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return one(z.Powi(in.Params[0].Int)), nil },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return one(z.Powi(in.Params[0].Int)), nil },
		},
		{
			Name: "powf", Summary: "principal z^x for a real x", Params: []ParamKind{ParamFloat},
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return one(z.Powf(in.Params[0].Float)), nil },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return one(z.Powf(in.Params[0].Float)), nil },
		},
		binary("powc", "principal z^w for a complex w", rect.Powc, polar.Powc),
		{
			Name: "expf", Summary: "b^z for a real base b", Params: []ParamKind{ParamFloat},
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return one(z.Expf(in.Params[0].Float)), nil },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return one(z.Expf(in.Params[0].Float)), nil },
		},

		{
			Name: "root", Summary: "all n-th roots, principal first", Params: []ParamKind{ParamInt},
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return many(z.Root(in.Params[0].Int)) },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return many(z.Root(in.Params[0].Int)) },
		},
		{
			Name: "sqrt", Summary: "both square roots, principal first",
			Rect:  func(z rect, _ Input) ([]complexnum.Number, error) { return many(z.Sqrt()) },
			Polar: func(z polar, _ Input) ([]complexnum.Number, error) { return many(z.Sqrt()) },
		},

		unary("cos", "cosine", rect.Cos, polar.Cos),
		unary("sin", "sine", rect.Sin, polar.Sin),
		{
			Name: "tan", Summary: "tangent, fails at poles",
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return single(z.Tan(in.Options...)) },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return single(z.Tan(in.Options...)) },
		},
		unary("cosh", "hyperbolic cosine", rect.Cosh, polar.Cosh),
		unary("sinh", "hyperbolic sine", rect.Sinh, polar.Sinh),
		{
			Name: "tanh", Summary: "hyperbolic tangent, fails at poles",
			Rect:  func(z rect, in Input) ([]complexnum.Number, error) { return single(z.Tanh(in.Options...)) },
			Polar: func(z polar, in Input) ([]complexnum.Number, error) { return single(z.Tanh(in.Options...)) },
		},

		{
			Name: "abs", Summary: "module |z| as a real value",
			Rect:  func(z rect, _ Input) ([]complexnum.Number, error) { return one(complexnum.Scalar(z.Module())), nil },
			Polar: func(z polar, _ Input) ([]complexnum.Number, error) { return one(complexnum.Scalar(z.Normalize().Module)), nil },
		},
		{
			Name: "arg", Summary: "principal argument in radians as a real value",
			Rect:  func(z rect, _ Input) ([]complexnum.Number, error) { return one(complexnum.Scalar(z.Argument())), nil },
			Polar: func(z polar, _ Input) ([]complexnum.Number, error) { return one(complexnum.Scalar(z.Normalize().Argument)), nil },
		},
		unary("convert", "z in the requested form", rect.AsRectangular, polar.AsPolar),
	}
}

func unary(name, summary string, r func(rect) rect, p func(polar) polar) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Rect:    func(z rect, _ Input) ([]complexnum.Number, error) { return one(r(z)), nil },
		Polar:   func(z polar, _ Input) ([]complexnum.Number, error) { return one(p(z)), nil },
	}
}

func binary(name, summary string, r func(rect, complexnum.Number) rect, p func(polar, complexnum.Number) polar) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Params:  []ParamKind{ParamComplex},
		Rect:    func(z rect, in Input) ([]complexnum.Number, error) { return one(r(z, in.Params[0].Complex)), nil },
		Polar:   func(z polar, in Input) ([]complexnum.Number, error) { return one(p(z, in.Params[0].Complex)), nil },
	}
}

func one(n complexnum.Number) []complexnum.Number { return []complexnum.Number{n} }

func single[T complexnum.Number](v T, err error) ([]complexnum.Number, error) {
	if err != nil {
		return nil, err
	}

	return one(v), nil
}

func many[T complexnum.Number](vs []T, err error) ([]complexnum.Number, error) {
	if err != nil {
		return nil, err
	}
	out := make([]complexnum.Number, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out, nil
}

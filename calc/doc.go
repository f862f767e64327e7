// Package calc evaluates complexnum operations by name.
//
// It is the layer between text and the complexnum library: a Registry maps
// operation names ("mul", "root", "tanh", ...) to the matching methods of
// both representations, and parses every argument from its rendered form.
// Job documents (YAML or TOML) describe batches of evaluations for Run.
//
// ⚙️ Usage:
//
//	reg := calc.DefaultRegistry()
//	vals, err := reg.Evaluate("root", calc.FormPolar, "8", "3")
//	// vals: the three cube roots of 8 as complexnum.Polar, principal first
//
//	jobs, err := calc.Decode(f, calc.FormatTOML)
//	for _, res := range calc.Run(reg, jobs) {
//	  if res.Err != nil { ... }
//	}
//
// Arguments:
//
//   - The first argument is the receiver. It may be written in either form
//     and is converted to the requested Form before the call, so the result
//     has that Form too.
//   - Further arguments are complex values, integers or reals, as each
//     operation declares in Operation.Params.
//
// Errors are the package sentinels (ErrUnknownOperation, ErrArity,
// ErrBadParameter, ...) or the complexnum sentinels that the operation
// itself produced (ErrPole, ErrInvalidRootCount, ErrSyntax); match them
// with errors.Is.
//
// A Registry is filled at construction and only read afterwards, so one
// instance may serve concurrent callers.
package calc

package calc

import "github.com/katalvlaran/lvcomplex/complexnum"

// Result is the outcome of one Job.
type Result struct {
	Job    Job
	Index  int
	Values []complexnum.Number
	Err    error
}

// OK reports whether the job produced values.
func (r Result) OK() bool { return r.Err == nil }

// Run evaluates jobs in order and returns one Result per job, in the same
// order. A failing job records its error and the batch goes on.
func Run(reg *Registry, jobs []Job) []Result {
	out := make([]Result, len(jobs))
	for i, j := range jobs {
		vals, err := reg.Evaluate(j.Op, j.Form, j.Strings()...)
		out[i] = Result{Job: j, Index: i, Values: vals, Err: err}
	}

	return out
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}

	return n
}

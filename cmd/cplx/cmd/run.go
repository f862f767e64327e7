package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/calc"
)

// errJobsFailed is returned by run when at least one job failed; the
// failures themselves are already reported.
var errJobsFailed = errors.New("one or more jobs failed")

// jobReport is the YAML shape of one result.
type jobReport struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Form   calc.Form `yaml:"form"`
	Values []string  `yaml:"values,omitempty"`
	Error  string    `yaml:"error,omitempty"`
}

func newRunCommand(a *app) *cobra.Command {
	var format, output string
	c := &cobra.Command{
		Use:   "run <jobfile|->",
		Short: "Evaluate a batch of jobs from a YAML or TOML document",
		Long: `Evaluate every job of a document and print the results in input order.
A failing job is reported and the batch goes on; the exit status is non-zero
if any job failed.

The format follows the file extension (.yaml, .yml, .toml) unless --format
is given. "-" reads standard input and requires --format.

YAML:

  jobs:
    - name: cube roots
      op: root
      form: polar
      args: ["8", 3]

TOML:

  [[job]]
  name = "cube roots"
  op   = "root"
  form = "polar"
  args = ["8", 3]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := readJobs(cmd.InOrStdin(), args[0], format)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Running jobs", "source", args[0], "count", len(jobs))

			results := calc.Run(a.reg, jobs)
			for _, res := range results {
				if !res.OK() {
					klog.ErrorS(res.Err, "Job failed", "job", res.Job.Label(res.Index), "op", res.Job.Op)
				}
			}

			switch strings.ToLower(output) {
			case "text":
				a.writeText(cmd.OutOrStdout(), results)
			case "yaml":
				if err := a.writeYAML(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown output %q (want text or yaml)", output)
			}

			if n := calc.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d: %w", n, len(results), errJobsFailed)
			}

			return nil
		},
	}
	c.Flags().StringVar(&format, "format", "", "document format: yaml or toml (default: from extension)")
	c.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")

	return c
}

// readJobs opens path ("-" for in) and decodes it.
func readJobs(in io.Reader, path, format string) ([]calc.Job, error) {
	f, err := documentFormat(path, format)
	if err != nil {
		return nil, err
	}
	if path == "-" {
		return calc.Decode(in, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return calc.Decode(file, f)
}

func documentFormat(path, format string) (calc.Format, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return calc.FormatYAML, nil
	case "toml":
		return calc.FormatTOML, nil
	case "":
		if path == "-" {
			return 0, fmt.Errorf("reading standard input needs --format")
		}

		return calc.FormatFromPath(path)
	}

	return 0, fmt.Errorf("%w: %q", calc.ErrUnknownFormat, format)
}

func (a *app) writeText(w io.Writer, results []calc.Result) {
	f := a.formatter()
	for _, res := range results {
		label := res.Job.Label(res.Index)
		if !res.OK() {
			fmt.Fprintf(w, "%s: error: %v\n", label, res.Err)
			continue
		}
		vals := make([]string, len(res.Values))
		for i, v := range res.Values {
			vals[i] = f.number(v)
		}
		fmt.Fprintf(w, "%s: %s\n", label, strings.Join(vals, ", "))
	}
}

func (a *app) writeYAML(w io.Writer, results []calc.Result) error {
	f := a.formatter()
	reports := make([]jobReport, len(results))
	for i, res := range results {
		r := jobReport{Name: res.Job.Label(res.Index), Op: res.Job.Op, Form: res.Job.Form}
		if res.OK() {
			for _, v := range res.Values {
				r.Values = append(r.Values, f.number(v))
			}
		} else {
			r.Error = res.Err.Error()
		}
		reports[i] = r
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]jobReport{"results": reports}); err != nil {
		return err
	}

	return enc.Close()
}

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/calc"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

func newEvalCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "eval [--form rectangular|polar] <op> <z> [params...]",
		Short: "Evaluate one operation",
		Long: `Evaluate one operation and print every resulting value on its own line.

Flags must come before <op>; everything after it is an argument, so
negative values need no quoting: cplx eval sqrt -4.

Run "cplx ops" for the list of operations.`,
		Example: `  cplx eval mul "1 + 2j" "2 · exp(0.5j)"
  cplx eval --form polar root 8 3
  cplx --precision 4 eval tanh 1+1j`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, args[0], args[1:])
		},
	}
	c.Flags().SetInterspersed(false)
	c.Flags().String(keyForm, calc.FormRectangular.String(), "representation to evaluate in")

	return c
}

func (a *app) eval(cmd *cobra.Command, op string, args []string) error {
	klog.V(2).InfoS("Evaluating", "op", op, "form", a.settings.form, "args", args)

	vals, err := a.reg.Evaluate(op, a.settings.form, args...)
	if err != nil {
		return err
	}

	f := a.formatter()
	if strings.EqualFold(op, "arg") {
		for _, v := range vals {
			fmt.Fprintln(cmd.OutOrStdout(), f.argument(float64(v.(complexnum.Scalar))))
		}

		return nil
	}
	f.writeValues(cmd.OutOrStdout(), vals)

	return nil
}

func newOpsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range a.reg.Names() {
				op, _ := a.reg.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", op.Usage(), op.Summary)
			}

			return tw.Flush()
		},
	}
}

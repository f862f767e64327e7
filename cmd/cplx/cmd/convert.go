package cmd

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/calc"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

func newConvertCommand(a *app) *cobra.Command {
	var to string
	c := &cobra.Command{
		Use:   "convert [--to rectangular|polar] <z>",
		Short: "Print a value in the other representation",
		Long: `Print a value in the requested representation. Without --to the value
is printed in the form it was not written in.`,
		Example: `  cplx convert "3 - 4j"
  cplx convert --to rectangular "2 · exp(0.5j)"
  cplx --degrees convert 1+1j`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := convertTarget(to, args[0])
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Converting", "value", args[0], "to", form)

			vals, err := a.reg.Evaluate("convert", form, args[0])
			if err != nil {
				return err
			}
			a.formatter().writeValues(cmd.OutOrStdout(), vals)

			return nil
		},
	}
	c.Flags().SetInterspersed(false)
	c.Flags().StringVar(&to, "to", "", "target representation (default: the other one)")

	return c
}

// convertTarget resolves --to, defaulting to the form the text is not in.
func convertTarget(to, text string) (calc.Form, error) {
	if to != "" {
		return calc.ParseForm(to)
	}
	n, err := complexnum.Parse(text)
	if err != nil {
		return 0, err
	}
	if _, ok := n.(complexnum.Polar); ok {
		return calc.FormRectangular, nil
	}

	return calc.FormPolar, nil
}

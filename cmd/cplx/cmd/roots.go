package cmd

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/calc"
)

func newRootsCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "roots [--form rectangular|polar] <z> <n>",
		Short: "Print all n-th roots of a value",
		Long: `Print the n n-th roots of a value, one per line, principal root first and
then by increasing k, where root k has argument (Arg z + 2πk) / n.

A negative value must follow "--": cplx roots -- -8 3.`,
		Example: `  cplx roots 8 3
  cplx --precision 3 roots --form polar "1 + 1j" 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			klog.V(2).InfoS("Extracting roots", "value", args[0], "n", args[1], "form", a.settings.form)

			vals, err := a.reg.Evaluate("root", a.settings.form, args[0], args[1])
			if err != nil {
				return err
			}
			a.formatter().writeValues(cmd.OutOrStdout(), vals)
			klog.V(3).InfoS("Roots printed", "count", len(vals))

			return nil
		},
	}
	c.Flags().String(keyForm, calc.FormRectangular.String(), "representation of the printed roots")

	return c
}

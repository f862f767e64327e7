package cmd

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvcomplex/calc"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

// EnvPrefix prefixes every environment variable the CLI reads,
// e.g. CPLX_PRECISION or CPLX_POLE_TOLERANCE.
const EnvPrefix = "CPLX"

// Config keys, shared by flags, environment and config file.
const (
	keyPrecision     = "precision"
	keyDegrees       = "degrees"
	keyPoleTolerance = "pole-tolerance"
	keyForm          = "form"
)

// settings is the resolved configuration of one invocation.
type settings struct {
	precision int
	degrees   bool
	form      calc.Form
}

// app holds the state shared by all subcommands.
type app struct {
	vip      *viper.Viper
	cfgFile  string
	settings settings
	reg      *calc.Registry
}

// NewRootCommand builds the cplx command tree. Each call returns an
// independent tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{vip: viper.New()}

	root := &cobra.Command{
		Use:   "cplx",
		Short: "Complex-number calculator",
		Long: `cplx evaluates complex-number operations in rectangular or polar form.

Values are written as "3 - 4j" (rectangular) or "5 · exp(0.93j)" (polar);
"*" may replace "·" and "i" may replace "j".

Flags can also be set through CPLX_* environment variables
(CPLX_PRECISION=4) or a YAML/TOML file passed with --config.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML or TOML)")
	pf.Int(keyPrecision, -1, "digits after the decimal point; -1 prints the shortest exact form")
	pf.Bool(keyDegrees, false, "print polar arguments and arg results in degrees")
	pf.Float64(keyPoleTolerance, complexnum.DefaultPoleTolerance, "denominator module treated as a pole by tan and tanh")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	pf.AddGoFlagSet(klogFlags)

	root.AddCommand(
		newEvalCommand(a),
		newOpsCommand(a),
		newConvertCommand(a),
		newRootsCommand(a),
		newRunCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// load merges flags, environment and config file, then builds the registry.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	a.vip.SetEnvPrefix(EnvPrefix)
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()
	if err := a.vip.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		klog.V(4).InfoS("Flag set", "name", f.Name, "value", f.Value.String())
	})

	if a.cfgFile != "" {
		a.vip.SetConfigFile(a.cfgFile)
		if err := a.vip.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
		klog.V(2).InfoS("Loaded config", "file", a.vip.ConfigFileUsed())
	}

	s := settings{
		precision: a.vip.GetInt(keyPrecision),
		degrees:   a.vip.GetBool(keyDegrees),
	}
	if raw := a.vip.GetString(keyForm); raw != "" {
		f, err := calc.ParseForm(raw)
		if err != nil {
			return err
		}
		s.form = f
	}
	tol := a.vip.GetFloat64(keyPoleTolerance)
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("--%s must be a finite, non-negative number, got %v", keyPoleTolerance, tol)
	}

	a.settings = s
	a.reg = calc.DefaultRegistry(complexnum.WithPoleTolerance(tol))
	klog.V(3).InfoS("Resolved settings", "precision", s.precision, "degrees", s.degrees, "form", s.form, "poleTolerance", tol)

	return nil
}

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcomplex/calc"
	"github.com/katalvlaran/lvcomplex/cmd/cplx/cmd"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

// execute runs a fresh command tree and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// writeFile stores content under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestEval(t *testing.T) {
	out, err := execute(t, "", "eval", "mul", "1 + 2j", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 + 4j\n", out)

	out, err = execute(t, "", "--precision", "3", "eval", "--form", "polar", "root", "8", "3")
	require.NoError(t, err)
	assert.Equal(t, "2.000 · exp(0.000j)\n2.000 · exp(2.094j)\n2.000 · exp(4.189j)\n", out)
}

// TestEval_NegativeArguments: flags end at the op name.
func TestEval_NegativeArguments(t *testing.T) {
	out, err := execute(t, "", "--precision", "3", "eval", "sqrt", "-4")
	require.NoError(t, err)
	assert.Equal(t, "0.000 + 2.000j\n-0.000 - 2.000j\n", out)

	out, err = execute(t, "", "--degrees", "eval", "arg", "-1")
	require.NoError(t, err)
	assert.Equal(t, "180°\n", out)
}

func TestEval_Errors(t *testing.T) {
	_, err := execute(t, "", "eval", "frobnicate", "1")
	assert.ErrorIs(t, err, calc.ErrUnknownOperation)

	_, err = execute(t, "", "eval", "tan", "1.5707963267948966")
	assert.ErrorIs(t, err, complexnum.ErrPole)

	_, err = execute(t, "", "eval", "--form", "spherical", "neg", "1")
	assert.ErrorIs(t, err, calc.ErrUnknownForm)

	_, err = execute(t, "", "eval", "neg")
	assert.Error(t, err, "op without a value")

	_, err = execute(t, "", "--pole-tolerance", "-1", "eval", "neg", "1")
	assert.Error(t, err)
}

func TestOps(t *testing.T) {
	out, err := execute(t, "", "ops")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, calc.DefaultRegistry().Len())
	assert.Contains(t, out, "root <z> <int>")
	assert.Contains(t, out, "powc <z> <complex>")
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "", "--precision", "4", "convert", "3 - 4j")
	require.NoError(t, err)
	assert.Equal(t, "5.0000 · exp(-0.9273j)\n", out)

	out, err = execute(t, "", "--degrees", "--precision", "2", "convert", "3 - 4j")
	require.NoError(t, err)
	assert.Equal(t, "5.00 ∠ -53.13°\n", out)

	out, err = execute(t, "", "convert", "2 · exp(0j)")
	require.NoError(t, err)
	assert.Equal(t, "2 + 0j\n", out)

	out, err = execute(t, "", "convert", "--to", "polar", "2 · exp(7j)")
	require.NoError(t, err)
	assert.Equal(t, "2 · exp(7j)\n", out, "same form: fields kept as written")

	_, err = execute(t, "", "convert", "nonsense")
	assert.ErrorIs(t, err, complexnum.ErrSyntax)
}

func TestRoots(t *testing.T) {
	out, err := execute(t, "", "roots", "8", "3", "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "2.000 + 0.000j\n-1.000 + 1.732j\n-1.000 - 1.732j\n", out)

	_, err = execute(t, "", "roots", "8", "0")
	assert.ErrorIs(t, err, complexnum.ErrInvalidRootCount)

	_, err = execute(t, "", "roots", "8", "three")
	assert.ErrorIs(t, err, calc.ErrBadParameter)
}

// TestSettings_EnvAndConfig: CPLX_* variables and --config feed the flags.
func TestSettings_EnvAndConfig(t *testing.T) {
	t.Setenv("CPLX_PRECISION", "1")
	out, err := execute(t, "", "eval", "add", "1", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5 + 0.0j\n", out)

	t.Setenv("CPLX_PRECISION", "")
	t.Setenv("CPLX_FORM", "polar")
	out, err = execute(t, "", "eval", "neg", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 · exp(3.141592653589793j)\n", out)

	out, err = execute(t, "", "eval", "--form", "rect", "neg", "1")
	require.NoError(t, err)
	assert.Equal(t, "-1 - 0j\n", out, "flag beats environment")

	cfg := writeFile(t, "cplx.yaml", "precision: 2\ndegrees: true\n")
	out, err = execute(t, "", "--config", cfg, "convert", "1j")
	require.NoError(t, err)
	assert.Equal(t, "1.00 ∠ 90.00°\n", out)

	cfg = writeFile(t, "cplx.toml", "precision = 0\n")
	out, err = execute(t, "", "--config", cfg, "convert", "--to", "rectangular", "2 · exp(0j)")
	require.NoError(t, err)
	assert.Equal(t, "2 + 0j\n", out)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}

const runYAML = `
jobs:
  - name: cube roots
    op: root
    form: polar
    args: ["8", 3]
  - op: mul
    args: ["1 + 2j", 2]
`

func TestRun_Text(t *testing.T) {
	path := writeFile(t, "jobs.yaml", runYAML)
	out, err := execute(t, "", "--precision", "3", "run", path)
	require.NoError(t, err)
	assert.Equal(t,
		"cube roots: 2.000 · exp(0.000j), 2.000 · exp(2.094j), 2.000 · exp(4.189j)\n"+
			"mul#1: 2.000 + 4.000j\n", out)
}

func TestRun_YAMLOutputAndFailures(t *testing.T) {
	doc := `
[[job]]
name = "double"
op   = "mul"
args = ["1 - 1j", 2]

[[job]]
name = "pole"
op   = "tanh"
args = ["1.5707963267948966j"]
`
	out, err := execute(t, doc, "run", "-", "--format", "toml", "-o", "yaml")
	require.Error(t, err, "a failed job makes the run fail")

	var report struct {
		Results []struct {
			Name   string   `yaml:"name"`
			Op     string   `yaml:"op"`
			Form   string   `yaml:"form"`
			Values []string `yaml:"values"`
			Error  string   `yaml:"error"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 2)
	assert.Equal(t, "double", report.Results[0].Name)
	assert.Equal(t, "rectangular", report.Results[0].Form)
	assert.Equal(t, []string{"2 - 2j"}, report.Results[0].Values)
	assert.Empty(t, report.Results[0].Error)
	assert.Contains(t, report.Results[1].Error, complexnum.ErrPole.Error())
}

func TestRun_InputErrors(t *testing.T) {
	_, err := execute(t, "", "run", "-")
	assert.Error(t, err, "stdin needs --format")

	_, err = execute(t, "", "run", writeFile(t, "jobs.json", "{}"))
	assert.ErrorIs(t, err, calc.ErrUnknownFormat)

	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "jobs: []\n", "run", "-", "--format", "yaml")
	assert.ErrorIs(t, err, calc.ErrEmptyDocument)

	_, err = execute(t, runYAML, "run", "-", "--format", "yaml", "-o", "xml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cplx "+cmd.Version+" ("), out)
}

package calc

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Job documents.
//
// YAML:
//
//	jobs:
//	  - name: cube roots
//	    op: root
//	    form: polar
//	    args: ["8", 3]
//
// TOML:
//
//	[[job]]
//	name = "cube roots"
//	op   = "root"
//	form = "polar"
//	args = ["8", 3]
//
// Form defaults to rectangular. Args may mix strings and numbers; numbers
// are taken as their decimal text.

// Format identifies a job document encoding.
type Format int

const (
	// FormatYAML is decoded with gopkg.in/yaml.v3.
	FormatYAML Format = iota

	// FormatTOML is decoded with github.com/BurntSushi/toml.
	FormatTOML
)

// String returns the conventional name of f.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension: .yaml/.yml or .toml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return 0, calcErrorf("FormatFromPath", fmt.Errorf("%w: %q", ErrUnknownFormat, path))
}

// Arg is one textual job argument.
type Arg string

// UnmarshalTOML implements toml.Unmarshaler so that numeric array items are
// accepted next to strings.
func (a *Arg) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		*a = Arg(t)
	case int64:
		*a = Arg(strconv.FormatInt(t, 10))
	case float64:
		*a = Arg(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return fmt.Errorf("%w: argument of type %T", ErrInvalidJob, v)
	}

	return nil
}

// Job is one evaluation request.
type Job struct {
	Name string `yaml:"name,omitempty" toml:"name"`
	Op   string `yaml:"op" toml:"op"`
	Form Form   `yaml:"form,omitempty" toml:"form"`
	Args []Arg  `yaml:"args" toml:"args"`
}

// Strings returns the arguments as plain strings.
func (j Job) Strings() []string {
	out := make([]string, len(j.Args))
	for i, a := range j.Args {
		out[i] = string(a)
	}

	return out
}

// Label returns Name, or "<op>#<index>" for anonymous jobs.
func (j Job) Label(index int) string {
	if j.Name != "" {
		return j.Name
	}

	return fmt.Sprintf("%s#%d", j.Op, index)
}

type document struct {
	Jobs []Job `yaml:"jobs" toml:"job"`
}

// Decode reads a job document from r.
//
// Unknown keys are rejected (ErrUnknownField for TOML, a yaml field error for
// YAML), as are documents without jobs (ErrEmptyDocument) and jobs without
// an op (ErrInvalidJob). Forms are checked here; operation names and
// arguments are checked when the job runs.
func Decode(r io.Reader, f Format) ([]Job, error) {
	var doc document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, calcErrorf("Decode", err)
		}

	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, calcErrorf("Decode", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, calcErrorf("Decode", fmt.Errorf("%w: %v", ErrUnknownField, undecoded))
		}

	default:
		return nil, calcErrorf("Decode", fmt.Errorf("%w: %s", ErrUnknownFormat, f))
	}

	if len(doc.Jobs) == 0 {
		return nil, calcErrorf("Decode", ErrEmptyDocument)
	}
	for i, j := range doc.Jobs {
		if strings.TrimSpace(j.Op) == "" {
			return nil, calcErrorf("Decode", fmt.Errorf("%w: job %d (%q) has no op", ErrInvalidJob, i, j.Name))
		}
	}

	return doc.Jobs, nil
}

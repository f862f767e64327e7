package complexnum

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML codec.
//
// Values marshal as mappings with named fields:
//
//	impedance: {real: 50, imag: -12.5}
//	phasor:    {module: 230, argument: 0.5236}
//
// Unmarshal also accepts a rendered string ("50 - 12.5j", "230 · exp(0.5236j)")
// or a bare number (purely real). Either mapping shape decodes into either
// type; the value is converted as needed.

type rectangularYAML struct {
	Real float64 `yaml:"real"`
	Imag float64 `yaml:"imag"`
}

type polarYAML struct {
	Module   float64 `yaml:"module"`
	Argument float64 `yaml:"argument"`
}

// anyYAML is the decoding target for mappings; pointers record which keys
// were present.
type anyYAML struct {
	Real     *float64 `yaml:"real"`
	Imag     *float64 `yaml:"imag"`
	Module   *float64 `yaml:"module"`
	Argument *float64 `yaml:"argument"`
}

// MarshalYAML implements yaml.Marshaler.
func (z Rectangular) MarshalYAML() (interface{}, error) {
	return rectangularYAML{Real: z.Real, Imag: z.Imag}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (z *Rectangular) UnmarshalYAML(node *yaml.Node) error {
	n, err := decodeYAMLNumber(node)
	if err != nil {
		return complexErrorf("Rectangular.UnmarshalYAML", err)
	}
	*z = n.AsRectangular()

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (z Polar) MarshalYAML() (interface{}, error) {
	return polarYAML{Module: z.Module, Argument: z.Argument}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (z *Polar) UnmarshalYAML(node *yaml.Node) error {
	n, err := decodeYAMLNumber(node)
	if err != nil {
		return complexErrorf("Polar.UnmarshalYAML", err)
	}
	*z = n.AsPolar()

	return nil
}

func decodeYAMLNumber(node *yaml.Node) (Number, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeYAMLNumber(node.Alias)

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, err
			}

			return Scalar(f), nil
		default:
			return Parse(node.Value)
		}

	case yaml.MappingNode:
		var raw anyYAML
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		rect := raw.Real != nil || raw.Imag != nil
		polar := raw.Module != nil || raw.Argument != nil
		switch {
		case rect && polar:
			return nil, fmt.Errorf("%w: mapping mixes rectangular and polar keys (line %d)", ErrUnsupportedYAML, node.Line)
		case polar:
			return Polar{Module: deref(raw.Module), Argument: deref(raw.Argument)}, nil
		default:
			return Rectangular{Real: deref(raw.Real), Imag: deref(raw.Imag)}, nil
		}
	}

	return nil, fmt.Errorf("%w: kind %d (line %d)", ErrUnsupportedYAML, node.Kind, node.Line)
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}

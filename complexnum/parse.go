package complexnum

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a complex value in either rendered form. Text containing
// "exp(" is read as Polar, anything else as Rectangular.
//
// Accepted Rectangular forms: "3 + 4j", "3-4i", "-2.5", "4j", "-j", "1e-3+2E5j".
// Accepted Polar forms: "5 · exp(0.93j)", "5*exp(0.93j)", "5 exp(0.93j)", "exp(j)".
func Parse(s string) (Number, error) {
	if strings.Contains(s, polarOpen) {
		return ParsePolar(s)
	}

	return ParseRectangular(s)
}

// ParseRectangular reads "<real> <+|-> <imag>j" or either part alone.
// The imaginary unit may be written j or i. Errors wrap ErrSyntax.
func ParseRectangular(s string) (Rectangular, error) {
	body := strings.Join(strings.Fields(s), "")
	if body == "" {
		return Rectangular{}, syntaxError("ParseRectangular", s)
	}

	if !hasImagSuffix(body) {
		re, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return Rectangular{}, syntaxError("ParseRectangular", s)
		}

		return Rectangular{Real: re}, nil
	}

	body = body[:len(body)-1]
	realPart, imagPart := splitImaginary(body)

	var z Rectangular
	if realPart != "" {
		re, err := strconv.ParseFloat(realPart, 64)
		if err != nil {
			return Rectangular{}, syntaxError("ParseRectangular", s)
		}
		z.Real = re
	}
	im, err := parseCoefficient(imagPart)
	if err != nil {
		return Rectangular{}, syntaxError("ParseRectangular", s)
	}
	z.Imag = im

	return z, nil
}

// ParsePolar reads "<module> · exp(<argument>j)". The separator before exp
// may be "·", "*" or blank; a missing module means 1. Fields are kept
// exactly as written (no normalization). Errors wrap ErrSyntax.
func ParsePolar(s string) (Polar, error) {
	t := strings.TrimSpace(s)
	idx := strings.Index(t, polarOpen)
	if idx < 0 || !strings.HasSuffix(t, ")") {
		return Polar{}, syntaxError("ParsePolar", s)
	}

	head := strings.TrimSpace(t[:idx])
	head = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(head, "·"), "*"))
	module := 1.0
	if head != "" {
		m, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return Polar{}, syntaxError("ParsePolar", s)
		}
		module = m
	}

	inner := strings.Join(strings.Fields(t[idx+len(polarOpen):len(t)-1]), "")
	if !hasImagSuffix(inner) {
		return Polar{}, syntaxError("ParsePolar", s)
	}
	arg, err := parseCoefficient(inner[:len(inner)-1])
	if err != nil {
		return Polar{}, syntaxError("ParsePolar", s)
	}

	return Polar{Module: module, Argument: arg}, nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (z Rectangular) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Either rendered form is
// accepted; polar text is converted.
func (z *Rectangular) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = n.AsRectangular()

	return nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (z Polar) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Either rendered form is
// accepted; rectangular text is converted.
func (z *Polar) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = n.AsPolar()

	return nil
}

func hasImagSuffix(s string) bool {
	return strings.HasSuffix(s, "j") || strings.HasSuffix(s, "i")
}

// splitImaginary splits "a+b" at the last sign that is not part of an
// exponent. Without such a sign the whole body is the imaginary part.
func splitImaginary(body string) (realPart, imagPart string) {
	for i := len(body) - 1; i > 0; i-- {
		c := body[i]
		if c != '+' && c != '-' {
			continue
		}
		if prev := body[i-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return body[:i], body[i:]
	}

	return "", body
}

// parseCoefficient parses the factor in front of j; a bare sign means ±1.
func parseCoefficient(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}

	return strconv.ParseFloat(s, 64)
}

func syntaxError(op, s string) error {
	return complexErrorf(op, fmt.Errorf("%w: %q", ErrSyntax, s))
}

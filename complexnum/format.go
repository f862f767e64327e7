package complexnum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Textual rendering:
//
//	Rectangular: "<real> <+|-> <|imag|>j"      e.g. "3 - 4j"
//	Polar:       "<module> · exp(<argument>j)" e.g. "5 · exp(0.9273j)"
//
// The sign between the parts follows the sign bit of Imag, so −0 prints as
// "- 0j". Parse accepts everything rendered here.

const (
	polarDot  = " · "
	polarOpen = "exp("
	polarEnd  = "j)"
)

// String renders z with the shortest exact float representation.
func (z Rectangular) String() string { return z.render('g', -1) }

// String renders z with the shortest exact float representation.
func (z Polar) String() string { return z.render('g', -1) }

// Format implements fmt.Formatter. %v and %s print String; %e %E %f %F %g %G
// apply the verb and precision to each component. Width pads the whole value.
func (z Rectangular) Format(f fmt.State, verb rune) {
	formatNumber(f, verb, z, z.render)
}

// Format implements fmt.Formatter; see Rectangular.Format.
func (z Polar) Format(f fmt.State, verb rune) {
	formatNumber(f, verb, z, z.render)
}

func (z Rectangular) render(verb byte, prec int) string {
	var b strings.Builder
	b.WriteString(formatComponent(z.Real, verb, prec))
	if math.Signbit(z.Imag) {
		b.WriteString(" - ")
	} else {
		b.WriteString(" + ")
	}
	b.WriteString(formatComponent(math.Abs(z.Imag), verb, prec))
	b.WriteByte('j')

	return b.String()
}

func (z Polar) render(verb byte, prec int) string {
	return formatComponent(z.Module, verb, prec) + polarDot + polarOpen +
		formatComponent(z.Argument, verb, prec) + polarEnd
}

func formatComponent(x float64, verb byte, prec int) string {
	return strconv.FormatFloat(x, verb, prec, 64)
}

func formatNumber(f fmt.State, verb rune, n Number, render func(byte, int) string) {
	var s string
	switch verb {
	case 'v', 's':
		s = render('g', -1)
	case 'e', 'E', 'f', 'g', 'G':
		prec, ok := f.Precision()
		if !ok {
			prec = defaultPrecision(verb)
		}
		s = render(byte(verb), prec)
	case 'F':
		prec, ok := f.Precision()
		if !ok {
			prec = 6
		}
		s = render('f', prec)
	default:
		fmt.Fprintf(f, "%%!%c(%T=%s)", verb, n, render('g', -1))

		return
	}

	if w, ok := f.Width(); ok && len([]rune(s)) < w {
		pad := strings.Repeat(" ", w-len([]rune(s)))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = f.Write([]byte(s))
}

// defaultPrecision mirrors fmt: six digits for %e and %f, shortest for %g.
func defaultPrecision(verb rune) int {
	if verb == 'g' || verb == 'G' {
		return -1
	}

	return 6
}

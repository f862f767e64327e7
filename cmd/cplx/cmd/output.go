package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvcomplex/angle"
	"github.com/katalvlaran/lvcomplex/complexnum"
)

// formatter renders values according to the resolved settings.
type formatter struct {
	precision int
	degrees   bool
}

func (a *app) formatter() formatter {
	return formatter{precision: a.settings.precision, degrees: a.settings.degrees}
}

// number renders a complexnum value. Polar values in degree mode use the
// phasor notation "5 ∠ 53.13°", which Parse does not read back.
func (f formatter) number(n complexnum.Number) string {
	switch v := n.(type) {
	case complexnum.Scalar:
		return f.real(float64(v))
	case complexnum.Polar:
		if f.degrees {
			return f.real(v.Module) + " ∠ " + f.real(angle.ToDegrees(v.Argument)) + "°"
		}
		if f.precision < 0 {
			return v.String()
		}

		return fmt.Sprintf("%.*f", f.precision, v)
	default:
		if f.precision < 0 {
			return v.AsRectangular().String()
		}

		return fmt.Sprintf("%.*f", f.precision, v.AsRectangular())
	}
}

// argument renders a radian value, converted to degrees in degree mode.
func (f formatter) argument(rad float64) string {
	if f.degrees {
		return f.real(angle.ToDegrees(rad)) + "°"
	}

	return f.real(rad)
}

func (f formatter) real(x float64) string {
	if f.precision < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strconv.FormatFloat(x, 'f', f.precision, 64)
}

// writeValues prints one value per line.
func (f formatter) writeValues(w io.Writer, vals []complexnum.Number) {
	for _, v := range vals {
		fmt.Fprintln(w, f.number(v))
	}
}

package complexnum

// Number is anything that can take part in complex arithmetic: both
// representations and bare scalars. Binary operations accept a Number as
// their right operand and convert it internally.
type Number interface {
	// AsRectangular returns the value in Cartesian form.
	AsRectangular() Rectangular

	// AsPolar returns the value in exponential form.
	AsPolar() Polar
}

// Rectangular is a complex number in Cartesian form: Real + Imag·j.
type Rectangular struct {
	Real float64
	Imag float64
}

// Polar is a complex number in exponential form: Module·exp(Argument·j).
// Argument is in radians.
//
// The fields are stored exactly as given. A negative Module or an Argument
// outside (−π, π] is legal and denotes the point Module·exp(Argument·j);
// use Normalize to obtain the canonical form.
type Polar struct {
	Module   float64
	Argument float64
}

// Scalar is a real number usable wherever a Number is expected.
type Scalar float64

// Real lists the Go numeric types accepted by the scalar constructors.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Well-known values.
var (
	// Zero is the additive identity.
	Zero = Rectangular{}

	// One is the multiplicative identity.
	One = Rectangular{Real: 1}

	// I is the imaginary unit.
	I = Rectangular{Imag: 1}
)

// compile-time interface checks
var (
	_ Number = Rectangular{}
	_ Number = Polar{}
	_ Number = Scalar(0)
)

// NewRectangular returns real + imag·j.
func NewRectangular(real, imag float64) Rectangular {
	return Rectangular{Real: real, Imag: imag}
}

// NewPolar returns module·exp(argument·j). No normalization is applied.
func NewPolar(module, argument float64) Polar {
	return Polar{Module: module, Argument: argument}
}

// FromScalar returns v as a purely real Rectangular value.
func FromScalar[T Real](v T) Rectangular {
	return Rectangular{Real: float64(v)}
}

// PolarFromScalar returns v as a Polar value with Module v and Argument 0.
// Negative v is kept as a negative module, mirroring FromScalar.
func PolarFromScalar[T Real](v T) Polar {
	return Polar{Module: float64(v)}
}

// FromPair assigns a pair directly to the Rectangular fields (Real, Imag).
func FromPair[T Real](real, imag T) Rectangular {
	return Rectangular{Real: float64(real), Imag: float64(imag)}
}

// PolarFromPair assigns a pair directly to the Polar fields (Module, Argument).
func PolarFromPair[T Real](module, argument T) Polar {
	return Polar{Module: float64(module), Argument: float64(argument)}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Rectangular {
	return Rectangular{Real: real(c), Imag: imag(c)}
}

// Complex128 returns z as a builtin complex128.
func (z Rectangular) Complex128() complex128 { return complex(z.Real, z.Imag) }

// Complex128 returns z as a builtin complex128.
func (z Polar) Complex128() complex128 { return z.AsRectangular().Complex128() }

// Module returns |z| = hypot(Real, Imag).
func (z Rectangular) Module() float64 { return z.AsPolar().Module }

// Argument returns the principal argument of z in (−π, π].
func (z Rectangular) Argument() float64 { return z.AsPolar().Argument }

// Real returns Module·cos(Argument).
func (z Polar) Real() float64 { return z.AsRectangular().Real }

// Imag returns Module·sin(Argument).
func (z Polar) Imag() float64 { return z.AsRectangular().Imag }

package complexnum_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvcomplex/complexnum"
)

// Example_eulerIdentity evaluates e^(jπ) + 1 from both sides.
func Example_eulerIdentity() {
	viaPolar := complexnum.NewPolar(1, math.Pi).Add(complexnum.One)
	viaExp := complexnum.NewRectangular(0, math.Pi).Exp().Add(complexnum.One)

	fmt.Printf("%.3f\n", viaPolar.AsRectangular())
	fmt.Printf("%.3f\n", viaExp)
	fmt.Println(complexnum.ApproxEqual(viaPolar, complexnum.Zero))
	// Output:
	// 0.000 + 0.000j
	// 0.000 + 0.000j
	// true
}

// ExampleRectangular_Mul mixes both representations; the result follows the
// receiver.
func ExampleRectangular_Mul() {
	r := complexnum.NewRectangular(1, 1)
	p := complexnum.NewPolar(2, math.Pi/2)

	fmt.Printf("%.2f\n", r.Mul(p))
	fmt.Printf("%.4f\n", p.Mul(r))
	// Output:
	// -2.00 + 2.00j
	// 2.8284 · exp(2.3562j)
}

// ExampleRectangular_Root lists the cube roots of 8, principal first.
func ExampleRectangular_Root() {
	roots, err := complexnum.FromScalar(8).Root(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range roots {
		fmt.Printf("%.4f\n", r)
	}

	_, err = complexnum.FromScalar(8).Root(0)
	fmt.Println(errors.Is(err, complexnum.ErrInvalidRootCount))
	// Output:
	// 2.0000 + 0.0000j
	// -1.0000 + 1.7321j
	// -1.0000 - 1.7321j
	// true
}

// ExampleParse reads a rendered value and converts it.
func ExampleParse() {
	z, err := complexnum.Parse("3 - 4j")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z)
	fmt.Printf("%.4f\n", z.AsPolar())
	// Output:
	// 3 - 4j
	// 5.0000 · exp(-0.9273j)
}

// ExampleRectangular_Tan shows the pole guard.
func ExampleRectangular_Tan() {
	_, err := complexnum.FromScalar(math.Pi / 2).Tan()
	fmt.Println(errors.Is(err, complexnum.ErrPole))

	v, _ := complexnum.FromScalar(math.Pi / 4).Tan()
	fmt.Printf("%.6f\n", v)
	// Output:
	// true
	// 1.000000 + 0.000000j
}

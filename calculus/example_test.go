package calculus_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/expr"
)

// ExampleDerivative prints the convergence table of d/dx x^3 at 1.
func ExampleDerivative() {
	res, err := calculus.Derivative(expr.Compile("x^3"), 1, &calculus.Options{Steps: 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range res.Rows {
		fmt.Printf("h=%g  D=%.4f\n", row.H, row.Approx)
	}
	fmt.Printf("f'(1) ≈ %.4f\n", res.Approx)
	// Output:
	// h=0.1  D=3.0100
	// h=0.01  D=3.0001
	// h=0.001  D=3.0000
	// f'(1) ≈ 3.0000
}

// ExampleLimit shows a one-sided-only function under Both.
func ExampleLimit() {
	res, err := calculus.Limit(expr.Compile("sqrt(x)"), 0, calculus.Both, &calculus.Options{Steps: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("left:", res.Left != nil)
	fmt.Printf("right: %.4f\n", *res.Right)
	fmt.Println("combined:", res.Approx != nil)
	// Output:
	// left: false
	// right: 0.1000
	// combined: false
}

// ExampleIntegrate integrates x^2 over [0, 3].
func ExampleIntegrate() {
	res, err := calculus.Integrate(expr.Compile("x^2"), 0, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f over %d intervals\n", res.Value, res.Intervals)
	// Output: 9.000000 over 400 intervals
}

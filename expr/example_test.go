package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/expr"
)

// ExampleEvaluate shows one-shot evaluation at a sample point.
func ExampleEvaluate() {
	v, err := expr.Evaluate("x^2 + log(100)", 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output: 11
}

// ExampleFunc_Eval shows a compiled function reused across points, and the
// failure reported for a pole.
func ExampleFunc_Eval() {
	f := expr.Compile("1/(x-1)")
	for _, x := range []float64{0, 1, 3} {
		v, err := f.Eval(x)
		if err != nil {
			fmt.Printf("f(%g): %v\n", x, err)

			continue
		}
		fmt.Printf("f(%g) = %g\n", x, v)
	}
	// Output:
	// f(0) = -1
	// f(1): x=1: expr: result is not finite
	// f(3) = 0.5
}

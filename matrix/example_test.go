package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/matrix"
)

// ExampleAnalyze parses a grid typed into the calculator form and prints its
// transpose and determinant.
func ExampleAnalyze() {
	a, err := matrix.Analyze("2, 0, 1\n1 3 2\n1 1 2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(a.Transpose)
	if a.Determinant != nil {
		fmt.Println("det =", *a.Determinant)
	}
	// Output:
	// [2, 1, 1]
	// [0, 3, 1]
	// [1, 2, 2]
	// det = 6
}

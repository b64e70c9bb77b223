package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [FILE|-]",
	Short: "Transpose and determinant of a text grid",
	Long: `Reads a matrix, one row per line with entries separated by spaces or
commas, from FILE or standard input. Tokens that are not numbers are
dropped; rows must end up the same length. The determinant is computed for
square matrices up to 3x3.

Examples:
  printf '1 2\n3 4\n' | lvcalc matrix
  lvcalc matrix grid.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			text []byte
			err  error
		)
		if len(args) == 0 || args[0] == "-" {
			text, err = io.ReadAll(cmd.InOrStdin())
		} else {
			text, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		a, err := matrix.Analyze(string(text))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "matrix %dx%d\n%s", a.Matrix.Rows(), a.Matrix.Cols(), a.Matrix)
		fmt.Fprintf(out, "transpose\n%s", a.Transpose)
		if a.Determinant != nil {
			fmt.Fprintf(out, "determinant %g\n", *a.Determinant)
		} else {
			fmt.Fprintf(out, "determinant not available: %v\n", a.DeterminantErr)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

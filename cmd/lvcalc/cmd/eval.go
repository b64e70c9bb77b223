package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/expr"
)

var evalX float64

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate an expression at x",
	Long: `Evaluates EXPR with x substituted by --x.

Supported: + - * / ^ ( ), sin cos tan log (base 10) ln sqrt abs, pi, e, x.

Examples:
  lvcalc eval "x^2" --x 3
  lvcalc eval "sin(pi/2)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := expr.Evaluate(args[0], evalX)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Float64Var(&evalX, "x", 0, "value substituted for x")
}

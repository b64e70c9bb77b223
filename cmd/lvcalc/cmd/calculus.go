package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/internal/config"
)

var (
	calcAt        float64
	calcH0        float64
	calcSteps     int
	limitSide     string
	integFrom     float64
	integTo       float64
	integN        int
	integUseGauss bool
)

var derivCmd = &cobra.Command{
	Use:   "deriv EXPR",
	Short: "Approximate f'(a) by central differences",
	Long: `Prints one row per step h = h0/10^i with the central difference
(f(a+h) - f(a-h)) / 2h, then the estimate at the smallest h.

Examples:
  lvcalc deriv "x^2" --at 2
  lvcalc deriv "sin(x)" --at 0 --steps 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := scheduleOptions(cmd)
		if err != nil {
			return err
		}
		res, err := calculus.Derivative(expr.Compile(args[0]), calcAt, opts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, row := range res.Rows {
			fmt.Fprintf(out, "h=%-8g %.10g\n", row.H, row.Approx)
		}
		fmt.Fprintf(out, "f'(%g) ≈ %.10g\n", res.Point, res.Approx)

		return nil
	},
}

var limitCmd = &cobra.Command{
	Use:   "limit EXPR",
	Short: "Approximate the limit of f at a",
	Long: `Samples f at a-h and/or a+h for shrinking h. With --side both the two
sides are averaged only when both produced a value.

Examples:
  lvcalc limit "sin(x)/x" --at 0
  lvcalc limit "sqrt(x)" --at 0 --side right`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := calculus.ParseSide(limitSide)
		if err != nil {
			return err
		}
		opts, err := scheduleOptions(cmd)
		if err != nil {
			return err
		}
		res, err := calculus.Limit(expr.Compile(args[0]), calcAt, side, opts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, row := range res.Rows {
			fmt.Fprintf(out, "h=%-8g left=%s right=%s\n", row.H, optional(row.Left), optional(row.Right))
		}
		printLimit(out, side, res)

		return nil
	},
}

var integrateCmd = &cobra.Command{
	Use:   "integrate EXPR",
	Short: "Approximate a definite integral",
	Long: `Composite Simpson's rule over --intervals subintervals (even), or
Gauss-Legendre quadrature with --gauss.

Examples:
  lvcalc integrate "x^2" --from 0 --to 1
  lvcalc integrate "sqrt(x)" --from 0 --to 4 --gauss`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := scheduleOptions(cmd)
		if err != nil {
			return err
		}
		f := expr.Compile(args[0])

		var res calculus.IntegralResult
		if integUseGauss {
			res, err = calculus.IntegrateGauss(f, integFrom, integTo, opts)
		} else {
			res, err = calculus.Integrate(f, integFrom, integTo, opts)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "∫[%g, %g] ≈ %.10g (n=%d)\n", res.A, res.B, res.Value, res.Intervals)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(derivCmd, limitCmd, integrateCmd)

	for _, c := range []*cobra.Command{derivCmd, limitCmd} {
		c.Flags().Float64Var(&calcAt, "at", 0, "point a")
		c.Flags().Float64Var(&calcH0, "h0", calculus.DefaultH0, "first step size")
		c.Flags().IntVar(&calcSteps, "steps", calculus.DefaultSteps, "number of step sizes")
	}
	limitCmd.Flags().StringVar(&limitSide, "side", "both", "left, right or both")

	integrateCmd.Flags().Float64Var(&integFrom, "from", 0, "lower bound")
	integrateCmd.Flags().Float64Var(&integTo, "to", 1, "upper bound")
	integrateCmd.Flags().IntVar(&integN, "intervals", calculus.DefaultIntervals, "Simpson subintervals (even)")
	integrateCmd.Flags().BoolVar(&integUseGauss, "gauss", false, "use Gauss-Legendre quadrature")
}

// scheduleOptions starts from the numeric section of the layered config
// (--config file, .env, LVCALC_NUMERIC_*) and applies the flags the user set.
func scheduleOptions(cmd *cobra.Command) (*calculus.Options, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	o := cfg.Numeric.Options()

	flags := cmd.Flags()
	if flags.Changed("h0") {
		o.H0 = calcH0
	}
	if flags.Changed("steps") {
		o.Steps = calcSteps
	}
	if flags.Changed("intervals") {
		o.Intervals = integN
	}

	return o, nil
}

func printLimit(out io.Writer, side calculus.Side, res calculus.LimitResult) {
	if res.Approx == nil {
		fmt.Fprintf(out, "limit (%s): not available, left=%s right=%s\n", side, optional(res.Left), optional(res.Right))

		return
	}
	fmt.Fprintf(out, "limit (%s) ≈ %.10g\n", side, *res.Approx)
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.10g", *v)
}

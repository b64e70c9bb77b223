package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lvcalc",
	Short: "lvcalc - numeric toolkit and calculator service",
	Long: `lvcalc evaluates expressions and runs small numeric tools:

  eval       - evaluate an expression at x
  deriv      - central-difference derivative
  limit      - one- or two-sided limit
  integrate  - composite Simpson (or Gauss-Legendre) integral
  matrix     - transpose and determinant of a text grid
  stats      - mean, median, modes, spread, percentiles
  emi        - loan instalment, amortization, compound interest, SIP
  roman/base - number notation conversions
  serve      - the same tools as a JSON HTTP API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Setup(level, "text")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// parseFloatArg parses the positional argument name.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}

	return v, nil
}

// parseIntArg parses the positional argument name.
func parseIntArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}

	return v, nil
}

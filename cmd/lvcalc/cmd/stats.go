package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/stats"
)

var (
	statsSample      bool
	statsPercentiles []float64
)

var statsCmd = &cobra.Command{
	Use:   "stats VALUES...",
	Short: "Descriptive statistics of a dataset",
	Long: `Prints count, sum, mean, median, min, max, modes and the standard
deviation. Values may be separated by spaces, commas or semicolons.

Examples:
  lvcalc stats 12 15 15 18 20
  lvcalc stats --sample "2, 4, 4, 4, 5, 5, 7, 9"
  lvcalc stats -p 25 -p 75 1 2 3 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, err := stats.ParseDataset(strings.Join(args, " "))
		if err != nil {
			return err
		}
		sum, err := stats.Describe(xs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "count   %d\n", sum.Count)
		fmt.Fprintf(out, "sum     %g\n", sum.Sum)
		fmt.Fprintf(out, "mean    %g\n", sum.Mean)
		fmt.Fprintf(out, "median  %g\n", sum.Median)
		fmt.Fprintf(out, "min     %g\n", sum.Min)
		fmt.Fprintf(out, "max     %g\n", sum.Max)
		if sum.HasMode {
			fmt.Fprintf(out, "modes   %v\n", sum.Modes)
		} else {
			fmt.Fprintln(out, "modes   no mode")
		}

		kind := stats.Population
		if statsSample {
			kind = stats.Sample
		}
		d, err := stats.Spread(xs, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "stddev  %g (%s, variance %g)\n", d.StdDev, kind, d.Variance)

		for _, p := range statsPercentiles {
			v, err := stats.Percentile(xs, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "p%-6g %g\n", p, v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsSample, "sample", false, "sample standard deviation (n-1)")
	statsCmd.Flags().Float64SliceVarP(&statsPercentiles, "percentile", "p", nil, "percentile to report, 0..100 (repeatable)")
}

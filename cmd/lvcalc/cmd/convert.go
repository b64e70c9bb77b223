package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/convert"
)

var (
	baseFrom int
	baseTo   int
)

var romanCmd = &cobra.Command{
	Use:   "roman NUMBER|NUMERAL",
	Short: "Convert between integers and Roman numerals",
	Long: `Converts 1..3999 to a Roman numeral, or a canonical numeral back.

Examples:
  lvcalc roman 1994
  lvcalc roman MCMXCIV`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if n, err := strconv.Atoi(args[0]); err == nil {
			s, err := convert.ToRoman(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)

			return nil
		}
		n, err := convert.FromRoman(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)

		return nil
	},
}

var baseCmd = &cobra.Command{
	Use:   "base DIGITS",
	Short: "Convert a number between bases 2..36",
	Example: `  lvcalc base ff --from 16 --to 2
  lvcalc base 255 --to 36`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := convert.ConvertBase(args[0], baseFrom, baseTo)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(romanCmd, baseCmd)
	baseCmd.Flags().IntVar(&baseFrom, "from", 10, "source base")
	baseCmd.Flags().IntVar(&baseTo, "to", 2, "target base")
}

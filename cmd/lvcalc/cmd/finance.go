package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/finance"
)

var (
	emiSchedule   bool
	compoundTimes int
)

var emiCmd = &cobra.Command{
	Use:   "emi PRINCIPAL RATE MONTHS",
	Short: "Monthly loan instalment",
	Long: `Prints the equated monthly instalment for PRINCIPAL at an annual RATE
(percent) over MONTHS. --schedule adds the month-by-month amortization.

Examples:
  lvcalc emi 100000 12 12
  lvcalc emi 250000 8.5 240 --schedule`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, rate, months, err := loanArgs(args)
		if err != nil {
			return err
		}
		sch, err := finance.Amortize(p, rate, months)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if emiSchedule {
			fmt.Fprintf(out, "%5s %12s %12s %12s %14s\n", "month", "payment", "interest", "principal", "balance")
			for _, row := range sch.Rows {
				fmt.Fprintf(out, "%5d %12.2f %12.2f %12.2f %14.2f\n",
					row.Month, row.Payment, row.Interest, row.Principal, row.Balance)
			}
		}
		fmt.Fprintln(out, sch)

		return nil
	},
}

var compoundCmd = &cobra.Command{
	Use:   "compound PRINCIPAL RATE YEARS",
	Short: "Compound interest",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parseFloatArg("principal", args[0])
		if err != nil {
			return err
		}
		rate, err := parseFloatArg("rate", args[1])
		if err != nil {
			return err
		}
		years, err := parseFloatArg("years", args[2])
		if err != nil {
			return err
		}
		g, err := finance.CompoundInterest(p, rate, years, compoundTimes)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "amount %.2f, interest %.2f\n", g.Amount, g.Interest)

		return nil
	},
}

var sipCmd = &cobra.Command{
	Use:   "sip MONTHLY RATE MONTHS",
	Short: "Future value of a monthly investment plan",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, rate, months, err := loanArgs(args)
		if err != nil {
			return err
		}
		g, err := finance.SIP(m, rate, months)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "invested %.2f, value %.2f, gain %.2f\n", g.Invested, g.Amount, g.Interest)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(emiCmd, compoundCmd, sipCmd)
	emiCmd.Flags().BoolVar(&emiSchedule, "schedule", false, "print the amortization schedule")
	compoundCmd.Flags().IntVar(&compoundTimes, "times", 1, "compounding periods per year")
}

// loanArgs parses AMOUNT RATE MONTHS.
func loanArgs(args []string) (amount, rate float64, months int, err error) {
	if amount, err = parseFloatArg("amount", args[0]); err != nil {
		return
	}
	if rate, err = parseFloatArg("rate", args[1]); err != nil {
		return
	}
	months, err = parseIntArg("months", args[2])

	return
}

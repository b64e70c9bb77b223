package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/health"
)

var (
	bacSex   string
	bacHours float64
)

var bmiCmd = &cobra.Command{
	Use:     "bmi WEIGHT_KG HEIGHT_CM",
	Short:   "Body mass index with WHO category",
	Example: "  lvcalc bmi 70 175",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := parseFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		h, err := parseFloatArg("height", args[1])
		if err != nil {
			return err
		}
		res, err := health.BMI(w, h)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "BMI %.1f (%s)\n", res.Value, res.Category)

		return nil
	},
}

var bacCmd = &cobra.Command{
	Use:     "bac ALCOHOL_GRAMS WEIGHT_KG",
	Short:   "Widmark blood alcohol estimate",
	Example: "  lvcalc bac 28 80 --sex female --hours 1.5",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseFloatArg("alcohol", args[0])
		if err != nil {
			return err
		}
		w, err := parseFloatArg("weight", args[1])
		if err != nil {
			return err
		}
		sex, err := health.ParseSex(bacSex)
		if err != nil {
			return err
		}
		v, err := health.BAC(a, w, sex, bacHours)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "BAC %.3f%%\n", v)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd, bacCmd)
	bacCmd.Flags().StringVar(&bacSex, "sex", "male", "male or female")
	bacCmd.Flags().Float64Var(&bacHours, "hours", 0, "hours since drinking started")
}

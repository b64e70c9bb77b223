// SPDX-License-Identifier: MIT

package finance

import "math"

// Growth is the outcome of an investment formula.
type Growth struct {
	Invested float64 `json:"invested"`
	Amount   float64 `json:"amount"`
	Interest float64 `json:"interest"` // Amount − Invested
}

// CompoundInterest grows principal for years at annualRatePct, compounded
// timesPerYear times a year: A = P·(1 + r/k)^(k·t).
//
// Errors: ErrInvalidInput.
// Complexity: O(1).
func CompoundInterest(principal, annualRatePct, years float64, timesPerYear int) (Growth, error) {
	const op = "CompoundInterest"
	if err := checkPositive(op, "principal", principal); err != nil {
		return Growth{}, err
	}
	if err := checkRate(op, annualRatePct); err != nil {
		return Growth{}, err
	}
	if err := checkPositive(op, "years", years); err != nil {
		return Growth{}, err
	}
	if err := checkTerm(op, "timesPerYear", timesPerYear); err != nil {
		return Growth{}, err
	}

	k := float64(timesPerYear)
	amount := principal * math.Pow(1+annualRatePct/100/k, k*years)

	return Growth{Invested: principal, Amount: amount, Interest: amount - principal}, nil
}

// SIP returns the future value of investing monthly at the start of each of
// months months: M·((1+i)^n − 1)/i·(1+i) with i the monthly rate.
//
// Errors: ErrInvalidInput.
// Complexity: O(1).
func SIP(monthly, annualRatePct float64, months int) (Growth, error) {
	const op = "SIP"
	if err := checkPositive(op, "monthly", monthly); err != nil {
		return Growth{}, err
	}
	if err := checkRate(op, annualRatePct); err != nil {
		return Growth{}, err
	}
	if err := checkTerm(op, "months", months); err != nil {
		return Growth{}, err
	}

	n := float64(months)
	invested := monthly * n
	i := monthlyRate(annualRatePct)
	amount := invested
	if i > 0 {
		amount = monthly * (math.Pow(1+i, n) - 1) / i * (1 + i)
	}

	return Growth{Invested: invested, Amount: amount, Interest: amount - invested}, nil
}

// SPDX-License-Identifier: MIT

package finance

import (
	"fmt"
	"math"
)

// EMI returns the fixed monthly instalment that repays principal over months
// at annualRatePct.
//
// Errors: ErrInvalidInput.
// Complexity: O(1).
func EMI(principal, annualRatePct float64, months int) (float64, error) {
	if err := validateLoan("EMI", principal, annualRatePct, months); err != nil {
		return 0, err
	}

	return emi(principal, monthlyRate(annualRatePct), months), nil
}

func emi(p, r float64, n int) float64 {
	if r == 0 {
		return p / float64(n)
	}
	g := math.Pow(1+r, float64(n))

	return p * r * g / (g - 1)
}

func validateLoan(op string, principal, annualRatePct float64, months int) error {
	if err := checkPositive(op, "principal", principal); err != nil {
		return err
	}
	if err := checkRate(op, annualRatePct); err != nil {
		return err
	}

	return checkTerm(op, "months", months)
}

// Installment is one month of an amortization schedule.
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Schedule is the full repayment plan of a loan.
type Schedule struct {
	EMI           float64       `json:"emi"`
	Rows          []Installment `json:"rows"`
	TotalPayment  float64       `json:"totalPayment"`
	TotalInterest float64       `json:"totalInterest"`
}

// Amortize splits every instalment of the loan into interest on the
// outstanding balance and repaid principal.
//
// Implementation:
//   - Stage 1: validate and compute the EMI.
//   - Stage 2: for each month, interest = balance·r, principal = EMI − interest,
//     balance −= principal. Rounding residue is removed on the last row,
//     whose balance is exactly 0; a negative balance is clamped to 0.
//   - Stage 3: totals are summed over the rows.
//
// Errors: ErrInvalidInput.
// Complexity: O(months).
func Amortize(principal, annualRatePct float64, months int) (Schedule, error) {
	// Stage 1 (Validate)
	if err := validateLoan("Amortize", principal, annualRatePct, months); err != nil {
		return Schedule{}, err
	}
	r := monthlyRate(annualRatePct)
	pay := emi(principal, r, months)

	// Stage 2 (Execute)
	s := Schedule{EMI: pay, Rows: make([]Installment, 0, months)}
	balance := principal
	var (
		m                int
		interest, repaid float64
	)
	for m = 1; m <= months; m++ {
		interest = balance * r
		repaid = pay - interest
		balance -= repaid
		if m == months || balance < 0 {
			balance = 0
		}
		s.Rows = append(s.Rows, Installment{
			Month:     m,
			Payment:   pay,
			Interest:  interest,
			Principal: repaid,
			Balance:   balance,
		})

		// Stage 3 (Totals)
		s.TotalPayment += pay
		s.TotalInterest += interest
	}

	return s, nil
}

// String is a one-line summary used by the CLI.
func (s Schedule) String() string {
	return fmt.Sprintf("EMI %.2f over %d months, total %.2f, interest %.2f",
		s.EMI, len(s.Rows), s.TotalPayment, s.TotalInterest)
}

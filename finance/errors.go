// SPDX-License-Identifier: MIT

package finance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks an amount, rate or term outside its domain.
var ErrInvalidInput = errors.New("finance: invalid input")

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkPositive requires a finite v > 0.
func checkPositive(op, name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%s: %s=%v must be > 0: %w", op, name, v, ErrInvalidInput)
	}

	return nil
}

// checkRate requires a finite rate ≥ 0.
func checkRate(op string, pct float64) error {
	if !isFinite(pct) || pct < 0 {
		return fmt.Errorf("%s: rate=%v must be ≥ 0: %w", op, pct, ErrInvalidInput)
	}

	return nil
}

// checkTerm requires at least one period.
func checkTerm(op, name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: %s=%d must be ≥ 1: %w", op, name, n, ErrInvalidInput)
	}

	return nil
}

// monthlyRate converts an annual percentage to a monthly fraction.
func monthlyRate(annualPct float64) float64 {
	return annualPct / 12 / 100
}

// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Derivative approximates f'(a) by central differences.
//
// Algorithm:
//  1. For i = 0..Steps-1, h = H0/10^i.
//  2. D_i = (f(a+h) − f(a−h)) / 2h, computed by gonum's fd.Central stencil
//     with an explicit step.
//  3. A step where either evaluation fails (non-finite) is skipped.
//  4. Approx is D_i of the last kept row (the smallest successful h).
//
// Errors:
//   - ErrInvalidPoint   if a is NaN/±Inf.
//   - ErrInvalidOptions for a bad schedule.
//   - ErrNoResult       if no step evaluated successfully.
//
// Complexity: 2·Steps evaluations.
func Derivative(f Evaluator, a float64, opts *Options) (DerivativeResult, error) {
	// Stage 1 (Validate)
	if !isFinite(a) {
		return DerivativeResult{}, fmt.Errorf("Derivative: a=%v: %w", a, ErrInvalidPoint)
	}
	o := resolve(opts)
	if err := o.validateSchedule(); err != nil {
		return DerivativeResult{}, fmt.Errorf("Derivative: %w", err)
	}

	// Stage 2 (Execute): sweep the schedule, keeping finite rows only.
	rows := make([]DerivativeRow, 0, o.Steps)
	var (
		i      int
		h, d   float64
		failed bool
	)
	sample := func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil {
			failed = true

			return math.NaN()
		}

		return v
	}
	for i = 0; i < o.Steps; i++ {
		h = o.step(i)
		failed = false
		d = fd.Derivative(sample, a, &fd.Settings{Formula: fd.Central, Step: h})
		if failed || !isFinite(d) {
			continue
		}
		rows = append(rows, DerivativeRow{H: h, Approx: d})
	}

	// Stage 3 (Finalize)
	if len(rows) == 0 {
		return DerivativeResult{}, fmt.Errorf("Derivative at %v: %w", a, ErrNoResult)
	}

	return DerivativeResult{Point: a, Rows: rows, Approx: rows[len(rows)-1].Approx}, nil
}

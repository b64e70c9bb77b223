// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Integrate approximates ∫_a^b f(x) dx with the composite Simpson rule.
//
// Algorithm (n = Intervals, even):
//
//	h   = (b − a) / n
//	x_i = a + i·h,  i = 0..n
//	w_i = 1 for i ∈ {0, n}; 4 for odd i; 2 for even interior i
//	I   = h/3 · Σ w_i f(x_i)
//
// Weights follow the parity of the sample index, not of x_i.
// b < a yields the negated integral.
//
// Errors:
//   - ErrEqualBounds    if a == b (also matches ErrNoResult).
//   - ErrInvalidPoint   if a bound is NaN/±Inf.
//   - ErrInvalidOptions if Intervals is odd or < 2.
//   - ErrNoResult       if any sample is non-finite; no partial sum is returned.
//
// Complexity: Intervals+1 evaluations.
func Integrate(f Evaluator, a, b float64, opts *Options) (IntegralResult, error) {
	// Stage 1 (Validate)
	if err := validateBounds(a, b); err != nil {
		return IntegralResult{}, fmt.Errorf("Integrate: %w", err)
	}
	o := resolve(opts)
	n := o.Intervals
	if n < 2 || n%2 != 0 {
		return IntegralResult{}, fmt.Errorf("Integrate: Intervals=%d: %w", n, ErrInvalidOptions)
	}

	// Stage 2 (Execute): weighted sweep, abort on the first bad sample.
	h := (b - a) / float64(n)
	var (
		i       int
		x, v, w float64
		err     error
		sum     float64
	)
	for i = 0; i <= n; i++ {
		x = a + float64(i)*h
		v, err = f.Eval(x)
		if err != nil {
			return IntegralResult{}, fmt.Errorf("Integrate at x=%v: %w: %w", x, ErrNoResult, err)
		}
		switch {
		case i == 0 || i == n:
			w = 1
		case i%2 == 1:
			w = 4
		default:
			w = 2
		}
		sum += w * v
	}

	// Stage 3 (Finalize)
	return IntegralResult{A: a, B: b, Intervals: n, Value: sum * h / 3}, nil
}

// IntegrateGauss approximates ∫_a^b f(x) dx with GaussOrder-point
// Gauss–Legendre quadrature. It follows the failure policy of Integrate.
func IntegrateGauss(f Evaluator, a, b float64, opts *Options) (IntegralResult, error) {
	if err := validateBounds(a, b); err != nil {
		return IntegralResult{}, fmt.Errorf("IntegrateGauss: %w", err)
	}
	o := resolve(opts)
	if o.GaussOrder < 1 {
		return IntegralResult{}, fmt.Errorf("IntegrateGauss: GaussOrder=%d: %w", o.GaussOrder, ErrInvalidOptions)
	}

	var failed error
	sample := func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil {
			if failed == nil {
				failed = fmt.Errorf("x=%v: %w", x, err)
			}

			return math.NaN()
		}

		return v
	}

	// quad expects min < max; orient and restore the sign.
	lo, hi, sign := a, b, 1.0
	if lo > hi {
		lo, hi, sign = b, a, -1.0
	}
	v := quad.Fixed(sample, lo, hi, o.GaussOrder, quad.Legendre{}, 1)
	if failed != nil {
		return IntegralResult{}, fmt.Errorf("IntegrateGauss: %w: %w", ErrNoResult, failed)
	}
	if !isFinite(v) {
		return IntegralResult{}, fmt.Errorf("IntegrateGauss: %w", ErrNoResult)
	}

	return IntegralResult{A: a, B: b, Intervals: o.GaussOrder, Value: sign * v}, nil
}

// validateBounds rejects non-finite or coinciding bounds.
func validateBounds(a, b float64) error {
	if !isFinite(a) || !isFinite(b) {
		return fmt.Errorf("a=%v b=%v: %w", a, b, ErrInvalidPoint)
	}
	if a == b {
		return fmt.Errorf("%w: %w", ErrEqualBounds, ErrNoResult)
	}

	return nil
}

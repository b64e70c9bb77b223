// SPDX-License-Identifier: MIT

package calculus

import "fmt"

// Limit approximates lim_{x→a} f(x) from the requested side(s).
//
// Algorithm:
//  1. For i = 0..Steps-1, h = H0/10^i; sample f(a−h) for Left/Both and
//     f(a+h) for Right/Both. Non-finite samples are dropped.
//  2. Left/Right hold the last successful sample of each side.
//  3. Approx:
//     Left, Right: that side's last value;
//     Both:        (Left+Right)/2, only if both sides have a value.
//     A Both request where one side never succeeds returns without Approx
//     and without error; the available side is still reported.
//
// Errors:
//   - ErrInvalidPoint / ErrInvalidOptions for bad input.
//   - ErrNoResult if no sample on any requested side succeeded.
func Limit(f Evaluator, a float64, side Side, opts *Options) (LimitResult, error) {
	// Stage 1 (Validate)
	if !isFinite(a) {
		return LimitResult{}, fmt.Errorf("Limit: a=%v: %w", a, ErrInvalidPoint)
	}
	if side != Both && side != Left && side != Right {
		return LimitResult{}, fmt.Errorf("Limit: %v: %w", side, ErrInvalidOptions)
	}
	o := resolve(opts)
	if err := o.validateSchedule(); err != nil {
		return LimitResult{}, fmt.Errorf("Limit: %w", err)
	}

	// Stage 2 (Execute)
	res := LimitResult{Point: a, Side: side, Rows: make([]LimitRow, 0, o.Steps)}
	var (
		i   int
		h   float64
		row LimitRow
	)
	for i = 0; i < o.Steps; i++ {
		h = o.step(i)
		row = LimitRow{H: h}
		if side != Right {
			if v, err := f.Eval(a - h); err == nil {
				row.Left = &v
				res.Left = &v
			}
		}
		if side != Left {
			if v, err := f.Eval(a + h); err == nil {
				row.Right = &v
				res.Right = &v
			}
		}
		if row.Left != nil || row.Right != nil {
			res.Rows = append(res.Rows, row)
		}
	}

	// Stage 3 (Finalize)
	if len(res.Rows) == 0 {
		return LimitResult{}, fmt.Errorf("Limit at %v (%v): %w", a, side, ErrNoResult)
	}
	switch side {
	case Left:
		res.Approx = res.Left
	case Right:
		res.Approx = res.Right
	default:
		if res.Left != nil && res.Right != nil {
			avg := (*res.Left + *res.Right) / 2
			res.Approx = &avg
		}
	}

	return res, nil
}

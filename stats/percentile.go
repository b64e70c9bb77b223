// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Percentile returns the p-th percentile of xs, p in [0,100], by linear
// interpolation between the closest ranks of the sorted values
// (rank = p/100 · (n−1)). Percentile(xs, 50) equals the median.
//
// Errors: ErrEmptyDataset, ErrInvalidNumber, ErrInvalidPercentile.
//
// Complexity: O(n log n).
func Percentile(xs []float64, p float64) (float64, error) {
	if err := validate("Percentile", xs); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("Percentile: p=%v: %w", p, ErrInvalidPercentile)
	}

	sorted := sortedCopy(xs)
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

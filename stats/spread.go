// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Kind selects the variance denominator.
type Kind int

const (
	// Population divides the sum of squared deviations by n.
	Population Kind = iota
	// Sample divides by n−1 and needs n ≥ 2.
	Sample
)

// String returns "population" or "sample".
func (k Kind) String() string {
	switch k {
	case Population:
		return "population"
	case Sample:
		return "sample"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "population" (or "") and "sample" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "population":
		return Population, nil
	case "sample":
		return Sample, nil
	default:
		return Population, fmt.Errorf("kind %q: %w", s, ErrInvalidKind)
	}
}

// Dispersion is the result of Spread.
type Dispersion struct {
	Kind     Kind    `json:"-"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
}

// Spread returns the variance and standard deviation of xs.
//
// Errors:
//   - ErrEmptyDataset, ErrInvalidNumber.
//   - ErrSampleTooSmall for Sample with fewer than two values.
//   - ErrInvalidKind for an unknown kind.
//
// Complexity: O(n).
func Spread(xs []float64, kind Kind) (Dispersion, error) {
	if err := validate("Spread", xs); err != nil {
		return Dispersion{}, err
	}

	var mean, variance float64
	switch kind {
	case Population:
		mean, variance = stat.PopMeanVariance(xs, nil)
	case Sample:
		if len(xs) < 2 {
			return Dispersion{}, fmt.Errorf("Spread: got %d value: %w", len(xs), ErrSampleTooSmall)
		}
		mean, variance = stat.MeanVariance(xs, nil)
	default:
		return Dispersion{}, fmt.Errorf("Spread: %v: %w", kind, ErrInvalidKind)
	}

	return Dispersion{
		Kind:     kind,
		Count:    len(xs),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// SPDX-License-Identifier: MIT

package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the result of Describe.
// Modes is empty and HasMode false when every value occurs once.
type Summary struct {
	Count   int       `json:"count"`
	Sum     float64   `json:"sum"`
	Mean    float64   `json:"mean"`
	Median  float64   `json:"median"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Modes   []float64 `json:"modes"`
	HasMode bool      `json:"hasMode"`
}

// Describe computes the summary statistics of xs. xs is not modified.
//
// Errors: ErrEmptyDataset, ErrInvalidNumber.
//
// Complexity: O(n log n) for the sorted copy.
func Describe(xs []float64) (Summary, error) {
	if err := validate("Describe", xs); err != nil {
		return Summary{}, err
	}

	sorted := sortedCopy(xs)
	modes := modesSorted(sorted)

	return Summary{
		Count:   len(xs),
		Sum:     floats.Sum(xs),
		Mean:    stat.Mean(xs, nil),
		Median:  medianSorted(sorted),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Modes:   modes,
		HasMode: len(modes) > 0,
	}, nil
}

// Median returns the middle value of xs, or the mean of the two middle
// values for an even count.
func Median(xs []float64) (float64, error) {
	if err := validate("Median", xs); err != nil {
		return 0, err
	}

	return medianSorted(sortedCopy(xs)), nil
}

// Modes returns all values that share the highest frequency, ascending.
// The result is empty when that frequency is 1.
func Modes(xs []float64) ([]float64, error) {
	if err := validate("Modes", xs); err != nil {
		return nil, err
	}

	return modesSorted(sortedCopy(xs)), nil
}

func sortedCopy(xs []float64) []float64 {
	out := slices.Clone(xs)
	slices.Sort(out)

	return out
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// modesSorted walks runs of equal values in a sorted slice.
func modesSorted(sorted []float64) []float64 {
	var (
		best  = 1
		modes = []float64{}
		i, j  int
	)
	for i = 0; i < len(sorted); i = j {
		for j = i + 1; j < len(sorted) && sorted[j] == sorted[i]; j++ {
		}
		run := j - i
		switch {
		case run > best:
			best = run
			modes = append(modes[:0], sorted[i])
		case run == best && best > 1:
			modes = append(modes, sorted[i])
		}
	}

	return modes
}

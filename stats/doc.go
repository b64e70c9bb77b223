// Package stats computes descriptive statistics over a small dataset typed as
// free text: count, sum, mean, median, mode(s), spread and percentiles.
//
// The stats package provides:
//
//   - ParseDataset: numbers separated by commas, semicolons or whitespace.
//     Unlike matrix.Parse it is strict: a token that is not a finite number
//     rejects the whole dataset (ErrInvalidNumber).
//   - Describe: count, sum, mean, median, min, max and modes in one pass.
//   - Modes: every value sharing the highest frequency, ascending. When no
//     value repeats there is no mode.
//   - Spread: variance and standard deviation, Population (÷n) or
//     Sample (÷(n−1), needs at least two points).
//   - Percentile: linear interpolation between closest ranks, p ∈ [0,100].
//
// Means and variances come from gonum's stat package; ordering statistics
// work on a sorted copy and never reorder the caller's slice.
//
// Example:
//
//	xs, _ := stats.ParseDataset("12, 15, 15, 18, 20")
//	s, _ := stats.Describe(xs)
//	fmt.Println(s.Mean, s.Median, s.Modes) // 16 15 [15]
package stats

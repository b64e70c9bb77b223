// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrEmptyDataset is returned when no value is available.
	ErrEmptyDataset = errors.New("stats: dataset is empty")

	// ErrInvalidNumber marks a token or value that is not a finite number.
	ErrInvalidNumber = errors.New("stats: not a finite number")

	// ErrSampleTooSmall is returned for a sample spread over fewer than two values.
	ErrSampleTooSmall = errors.New("stats: sample variance needs at least 2 values")

	// ErrInvalidPercentile marks p outside [0,100].
	ErrInvalidPercentile = errors.New("stats: percentile must be within [0,100]")

	// ErrInvalidKind marks an unknown spread kind.
	ErrInvalidKind = errors.New("stats: unknown spread kind")
)

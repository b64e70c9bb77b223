// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

func isValueSep(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// ParseDataset reads numbers separated by commas, semicolons or whitespace.
//
// Errors:
//   - ErrInvalidNumber if any token is not a finite float64 (the token is quoted).
//   - ErrEmptyDataset if the text holds no token at all.
//
// Complexity: O(len(text)).
func ParseDataset(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, isValueSep)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseDataset: %w", ErrEmptyDataset)
	}

	xs := make([]float64, 0, len(fields))
	var (
		v   float64
		err error
	)
	for i, tok := range fields {
		v, err = strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ParseDataset: value %d %q: %w", i+1, tok, ErrInvalidNumber)
		}
		xs = append(xs, v)
	}

	return xs, nil
}

// validate is the common guard of every statistic.
func validate(op string, xs []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyDataset)
	}
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: xs[%d]=%v: %w", op, i, v, ErrInvalidNumber)
		}
	}

	return nil
}

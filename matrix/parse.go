// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// isEntrySep splits a row into entries on commas and any whitespace.
func isEntrySep(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Parse reads a matrix from free text.
//
// Implementation:
//   - Stage 1: split on newlines; blank lines are skipped.
//   - Stage 2: split each row on whitespace/commas; tokens that do not parse
//     as a finite float64 are dropped silently (the row keeps the rest).
//   - Stage 3: reject the grid if no row survived, if rows differ in length,
//     or if the rows are all empty.
//
// Errors:
//   - ErrEmpty      (no rows, or zero columns).
//   - ErrRaggedRows (rows of unequal length after dropping tokens).
//
// Complexity: O(len(text)).
func Parse(text string) (*Dense, error) {
	// Stage 1 (Split rows)
	lines := strings.Split(text, "\n")
	rows := make([][]float64, 0, len(lines))

	// Stage 2 (Split entries, keep numeric tokens only)
	var (
		fields []string
		row    []float64
		v      float64
		err    error
	)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields = strings.FieldsFunc(line, isEntrySep)
		row = make([]float64, 0, len(fields))
		for _, tok := range fields {
			v, err = strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	// Stage 3 (Validate shape)
	if len(rows) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmpty)
	}
	cols := len(rows[0])
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("Parse: row %d has %d entries, row 1 has %d: %w", i+1, len(rows[i]), cols, ErrRaggedRows)
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmpty)
	}

	return NewDenseFromRows(rows)
}

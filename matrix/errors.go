// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (possibly wrapped with operation
// context) and tests match them via errors.Is. No routine panics on
// user-supplied input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Context is added at the call site with fmt.Errorf("Op: %w", ErrX).
//
// ERROR PRIORITY:
// nil -> shape/index -> parse (empty, ragged) -> domain (non-square, unsupported size).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where a finite one is required (Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEmpty is returned by Parse when no row or no column survives.
	ErrEmpty = errors.New("matrix: no rows or columns")

	// ErrRaggedRows is returned by Parse when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDeterminantUnsupported marks a square matrix larger than 3×3:
	// no determinant is computed for it.
	ErrDeterminantUnsupported = errors.New("matrix: determinant not computed for size > 3")
)

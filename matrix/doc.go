// Package matrix parses free-text numeric grids and provides the small set of
// dense primitives the matrix calculator needs: transpose for any rectangular
// matrix and a closed-form determinant for sizes up to 3×3.
//
// The matrix package provides:
//
//   - Parse: rows split on newlines, entries on whitespace or commas.
//     Tokens that are not finite numbers are dropped from their row without
//     an error; rows of unequal length are rejected (ErrRaggedRows).
//   - Dense: a row-major, bounds-checked implementation of Matrix.
//   - Transpose: row/column swap, defined for every shape.
//   - Determinant: 1×1, 2×2 and 3×3 by cofactor expansion. Larger square
//     matrices return ErrDeterminantUnsupported; non-square ones
//     ErrNonSquare.
//   - Analyze: Parse + Transpose + Determinant in one call, where a
//     determinant that cannot be computed leaves the transpose intact.
//
// All routines are pure: inputs are never mutated and results are fresh.
package matrix

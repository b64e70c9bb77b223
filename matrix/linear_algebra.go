// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Transpose for any rectangular matrix.
//   - Closed-form determinant for orders 1..3; larger orders are deliberately
//     left uncomputed (ErrDeterminantUnsupported).
//
// Determinism & Performance:
//   - Fixed i→j traversal; *Dense inputs take a flat-slice fast path.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with the operation tag; callers match with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix mᵀ with shape Cols×Rows.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: *Dense fast path copies data[i*cols+j] → res[j*rows+i];
//     otherwise At/Set in i→j order.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - ErrInvalidDimensions if m has a zero dimension.
//   - Wrapped At/Set errors from the generic path.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Determinant returns det(m) for square matrices of order 1, 2 or 3.
//
// Formulas:
//
//	1×1: a
//	2×2: ad − bc
//	3×3: a(ei − fh) − b(di − fg) + c(dh − eg)   (first-row cofactors)
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (from ValidateSquare).
//   - ErrDeterminantUnsupported for order > 3.
//
// Complexity: O(1).
func Determinant(m Matrix) (float64, error) {
	// Stage 1 (Validate)
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()
	if n > maxDeterminantSize {
		return 0, matrixErrorf(fmt.Sprintf("%s(%dx%d)", opDeterminant, n, n), ErrDeterminantUnsupported)
	}

	// Stage 2 (Load): copy into a fixed 3×3 scratch.
	var (
		a    [maxDeterminantSize][maxDeterminantSize]float64
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a[i][j], err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opDeterminant, err)
			}
		}
	}

	// Stage 3 (Execute)
	switch n {
	case 1:
		return a[0][0], nil
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0], nil
	default:
		return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
			a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
			a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0]), nil
	}
}

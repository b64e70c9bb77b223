// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcalc/matrix"
)

func TestTranspose_Square(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, tr.ToRows())
}

func TestTranspose_RectangularAndFallback(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	fast, err := matrix.Transpose(m)
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)

	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	require.Equal(t, want, fast.ToRows())
	require.Equal(t, want, slow.ToRows())
}

func TestTranspose_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_ClosedForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		vals []float64
		want float64
	}{
		{"1x1", 1, []float64{-7}, -7},
		{"2x2", 2, []float64{1, 2, 3, 4}, -2},
		{"3x3", 3, []float64{2, 0, 1, 1, 3, 2, 1, 1, 2}, 6},
		{"3x3 singular", 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
		{"3x3 identity", 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 1},
	}
	for _, tc := range cases {
		m := NewFilledDense(t, tc.n, tc.n, tc.vals)
		det, err := matrix.Determinant(m)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, det, tc.name)

		det, err = matrix.Determinant(hide{m})
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, det, tc.name)
	}
}

func TestDeterminant_Domain(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrDeterminantUnsupported)

	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	a, err := matrix.Analyze("1 2\n3 4")
	require.NoError(t, err)
	require.NotNil(t, a.Determinant)
	require.Equal(t, -2.0, *a.Determinant)
	require.NoError(t, a.DeterminantErr)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, a.Transpose.ToRows())

	// 4x4: transpose still succeeds, determinant is not computed.
	a, err = matrix.Analyze("1 2 3 4\n5 6 7 8\n9 10 11 12\n13 14 15 16")
	require.NoError(t, err)
	require.Nil(t, a.Determinant)
	require.ErrorIs(t, a.DeterminantErr, matrix.ErrDeterminantUnsupported)
	require.Equal(t, 4, a.Transpose.Rows())
	require.Equal(t, 5.0, MustAt(t, a.Transpose, 0, 1))

	_, err = matrix.Analyze("1 2\n3")
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcalc/matrix"
)

func TestParse_WhitespaceAndCommas(t *testing.T) {
	m, err := matrix.Parse("1, 2 3\n4\t5,6\r\n\n  7 8 9  \n")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m.ToRows())
}

func TestParse_DropsNonNumericTokens(t *testing.T) {
	// "abc" and "NaN" are dropped; the rows stay 2 wide.
	m, err := matrix.Parse("1 abc 2\n3 4 NaN")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	// Scientific notation and signs are numbers.
	m, err = matrix.Parse("-1.5e2 +2")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-150, 2}}, m.ToRows())
}

func TestParse_Ragged(t *testing.T) {
	_, err := matrix.Parse("1 2\n3")
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	// Dropping a token can make rows ragged.
	_, err = matrix.Parse("1 2\n3 x")
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n\n", "a b\nc d"} {
		_, err := matrix.Parse(in)
		require.ErrorIs(t, err, matrix.ErrEmpty, "input %q", in)
	}
}

// SPDX-License-Identifier: MIT

package matrix

// Analysis is what the matrix calculator shows for one input grid.
// Determinant is nil when it was not computed; DeterminantErr says why.
type Analysis struct {
	Matrix         *Dense
	Transpose      *Dense
	Determinant    *float64
	DeterminantErr error
}

// Analyze parses text and derives the transpose and, when defined, the
// determinant. Only a parse failure is returned as an error: a determinant
// that cannot be computed (non-square, order > 3) is recorded in the result
// next to a valid transpose.
func Analyze(text string) (Analysis, error) {
	m, err := Parse(text)
	if err != nil {
		return Analysis{}, err
	}
	t, err := Transpose(m)
	if err != nil {
		return Analysis{}, err
	}

	out := Analysis{Matrix: m, Transpose: t}
	if det, err := Determinant(m); err != nil {
		out.DeterminantErr = err
	} else {
		out.Determinant = &det
	}

	return out, nil
}

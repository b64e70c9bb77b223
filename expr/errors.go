// SPDX-License-Identifier: MIT

package expr

import "errors"

// Every message is prefixed with "expr: ". Parse errors and evaluation
// errors coming from the engine are wrapped with ErrSyntax so callers can
// match with errors.Is and still read the detail.
var (
	// ErrEmptyExpression is returned for blank input.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrSyntax marks an expression the engine could not parse or evaluate
	// (unknown identifiers, unbalanced parentheses, leftover tokens).
	ErrSyntax = errors.New("expr: malformed expression")

	// ErrNonFinite marks an evaluation (or a sample point) that is NaN or ±Inf.
	ErrNonFinite = errors.New("expr: result is not finite")

	// ErrNotNumeric marks an expression that evaluated to a non-number
	// (e.g. a comparison yielding a boolean).
	ErrNotNumeric = errors.New("expr: result is not a number")
)

// SPDX-License-Identifier: MIT

package expr

// Test bridge: exposes the substitution step to expr_test without widening the API.

// Substituted returns the closed text f hands to the engine for x.
func Substituted(f Func, x float64) string {
	return f.substitute(x)
}

// Package calculus approximates derivatives, limits and definite integrals of
// single-variable expressions by sampling them numerically.
//
// 🚀 What is inside?
//
//   - Derivative: central difference (f(a+h) − f(a−h)) / 2h over a shrinking
//     step schedule h_i = H0/10^i, i = 0..Steps-1 (defaults 0.1 and 6).
//     Every step that evaluates finitely is kept, so the returned table shows
//     convergence; the estimate is the row with the smallest h.
//   - Limit: the same schedule sampled on the left (a−h), the right (a+h) or
//     both. For Both the two sides are averaged only when both produced a
//     value; a one-sided success is reported without a combined estimate.
//   - Integrate: composite Simpson's rule over a fixed even number of
//     subintervals (default 400) with weights 1, 4, 2, ..., 4, 1 assigned by
//     sample index parity.
//   - IntegrateGauss: fixed-order Gauss–Legendre quadrature (gonum quad),
//     handy as a cross-check of Integrate.
//
// ⚙️ Failure policy:
//
//	Multi-sample routines (Derivative, Limit) skip a step whose evaluation is
//	not finite. Integration aborts on the first non-finite sample, because a
//	partial Simpson sum is meaningless. Either way the caller receives
//	ErrNoResult when nothing usable remains.
//
// Usage:
//
//	f := expr.Compile("sin(x)/x")
//	lim, err := calculus.Limit(f, 0, calculus.Both, nil)
//	fmt.Println(*lim.Approx) // ≈ 1
//
// Complexity: O(Steps) evaluations for Derivative/Limit, O(Intervals) for
// Integrate, O(GaussOrder) for IntegrateGauss.
package calculus

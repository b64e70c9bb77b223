// Package expr evaluates user-typed, single-variable math expressions.
//
// 🚀 What does it accept?
//
//	Infix arithmetic over real numbers in the syntax calculator forms use:
//	  • operators      + - * / ^ and parentheses
//	  • functions      sin cos tan log ln sqrt abs
//	  • constants      pi, e
//	  • the variable   x
//
//	log is the base-10 logarithm, ln the natural one.
//
// ✨ How is it evaluated?
//
//	There is no symbolic layer. Compile parses the input with calculator
//	precedence (^ binds tighter than a prefix minus and groups right to
//	left, so -x^2 is -(x^2) and 2^3^2 is 512) and re-emits it fully
//	parenthesised. Evaluating f at a point substitutes the free variable x
//	with a parenthesised decimal literal of that point and hands the closed
//	expression to the github.com/Knetic/govaluate engine. A malformed
//	expression is reported when it is evaluated, not when it is compiled.
//
//	Numbers may use exponent form (1e-3). Implicit multiplication such as
//	2x or (x)(x) is not accepted.
//
//	A result that is NaN or ±Inf is an evaluation failure (ErrNonFinite);
//	callers decide whether to skip the sample point or abort.
//
// ⚙️ Usage:
//
//	f := expr.Compile("sin(x)/x")
//	y, err := f.Eval(0.5)
//
//	// or, one-shot:
//	y, err = expr.Evaluate("x^2", 3) // 9
package expr

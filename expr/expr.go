// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// powOperator is govaluate's exponent operator; its '^' is bitwise XOR.
const powOperator = "**"

// wordX matches the free variable in normalized text. Function names and
// decimal literals never contain a standalone x.
var wordX = regexp.MustCompile(`\bx\b`)

// functions is the closed set of callable names. Arity is checked at call time.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"tan":  unary("tan", math.Tan),
	"log":  unary("log", math.Log10),
	"ln":   unary("ln", math.Log),
	"sqrt": unary("sqrt", math.Sqrt),
	"abs":  unary("abs", math.Abs),
}

// unary adapts a float64 function to govaluate's variadic calling convention.
func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument %v is not a number", name, args[0])
		}

		return fn(v), nil
	}
}

// Func is a compiled single-variable expression f(x).
// The zero value is an empty expression and always fails with ErrEmptyExpression.
type Func struct {
	src  string // input as typed
	norm string // fully parenthesised engine text; x still free
	err  error  // parse failure, reported by Eval
}

// Compile normalizes src for later evaluation. It never fails: a syntax
// error is kept and reported when the expression is evaluated.
func Compile(src string) Func {
	lower := strings.ToLower(strings.TrimSpace(src))
	if lower == "" {
		return Func{src: src}
	}
	norm, err := normalize(lower)
	if err != nil {
		return Func{src: src, err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}

	return Func{src: src, norm: norm}
}

// Evaluate compiles src and evaluates it at x.
func Evaluate(src string, x float64) (float64, error) {
	return Compile(src).Eval(x)
}

// String returns the expression as it was typed.
func (f Func) String() string {
	return f.src
}

// Eval evaluates f at x.
//
// Errors:
//   - ErrEmptyExpression for blank input.
//   - ErrNonFinite if x itself or the result is NaN/±Inf.
//   - ErrSyntax (wrapping the engine's message) for malformed input.
//   - ErrNotNumeric if the expression does not yield a number.
func (f Func) Eval(x float64) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.norm == "" {
		return 0, ErrEmptyExpression
	}
	if !isFinite(x) {
		return 0, fmt.Errorf("x=%v: %w", x, ErrNonFinite)
	}

	closed := f.substitute(x)
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(closed, functions)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	out, err := parsed.Evaluate(map[string]interface{}{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrNotNumeric, out)
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("x=%v: %w", x, ErrNonFinite)
	}

	return v, nil
}

// substitute replaces every free x with a parenthesised literal of x.
func (f Func) substitute(x float64) string {
	return wordX.ReplaceAllLiteralString(f.norm, "("+literal(x)+")")
}

// literal formats v as a plain decimal. The engine has no exponent
// notation and would read the 'e' of 1e-7 as an identifier.
func literal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

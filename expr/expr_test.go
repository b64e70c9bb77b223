// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvcalc/expr"
)

// EvaluateSuite groups the evaluator contract tests.
type EvaluateSuite struct {
	suite.Suite
}

// TestSquare: x^2 at 3 is exactly 9.
func (s *EvaluateSuite) TestSquare() {
	v, err := expr.Evaluate("x^2", 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9.0, v)
}

// TestConstants: pi and e resolve to their float64 values.
func (s *EvaluateSuite) TestConstants() {
	v, err := expr.Evaluate("sin(pi/2)", 123.456)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, v, 1e-12)

	v, err = expr.Evaluate("ln(e)", 0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, v, 1e-12)
}

// TestLogBases: log is base-10, ln is natural.
func (s *EvaluateSuite) TestLogBases() {
	v, err := expr.Evaluate("log(x)", 1000)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 3.0, v, 1e-12)

	v, err = expr.Evaluate("ln(x)", 1000)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Log(1000), v, 1e-12)
}

// TestFunctions covers the remaining built-ins and operator mix.
func (s *EvaluateSuite) TestFunctions() {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"sqrt(x) + abs(-3)", 16, 7},
		{"cos(0) * 2 - 1", 0, 1},
		{"tan(x)", 0, 0},
		{"(x + 1) / 2", 5, 3},
		{"X^3", 2, 8},
		{"2 * x - x / 4", -8, -14},
	}
	for _, tc := range cases {
		v, err := expr.Evaluate(tc.src, tc.x)
		require.NoError(s.T(), err, tc.src)
		require.InDelta(s.T(), tc.want, v, 1e-12, tc.src)
	}
}

// TestNegativeSample: the substituted literal is parenthesised.
func (s *EvaluateSuite) TestNegativeSample() {
	v, err := expr.Evaluate("x^2", -3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9.0, v)

	require.Equal(s.T(), "((-3) ** 2)", expr.Substituted(expr.Compile("x^2"), -3))
}

// TestSubstitutedText: literals and samples reach the engine as plain decimals.
func (s *EvaluateSuite) TestSubstitutedText() {
	require.Equal(s.T(), "((0.5) * 0.001)", expr.Substituted(expr.Compile("x*1e-3"), 0.5))
	require.Equal(s.T(), "(0.0000001)", expr.Substituted(expr.Compile("x"), 1e-7))
	require.Equal(s.T(), "(-((2) ** 2))", expr.Substituted(expr.Compile("-x^2"), 2))
}

// TestPowerPrecedence: ^ binds tighter than a prefix sign and groups right to left.
func (s *EvaluateSuite) TestPowerPrecedence() {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"-x^2", 3, -9},
		{"-2^2", 0, -4},
		{"(-2)^2", 0, 4},
		{"2^3^2", 0, 512},
		{"2^x^2", 3, 512},
		{"x^-1", 2, 0.5},
		{"e^-x^2", 1, math.Exp(-1)},
		{"e^-x^2", 2, math.Exp(-4)},
		{"1 - x^2", 3, -8},
		{"2*x^2", 3, 18},
		{"sin(x)^2 + cos(x)^2", 0.7, 1},
		{"--x", 4, 4},
	}
	for _, tc := range cases {
		v, err := expr.Evaluate(tc.src, tc.x)
		require.NoError(s.T(), err, tc.src)
		require.InDelta(s.T(), tc.want, v, 1e-12, tc.src)
	}
}

// TestExponentLiterals: numbers in exponent form are ordinary literals.
func (s *EvaluateSuite) TestExponentLiterals() {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"1e3", 0, 1000},
		{"x*1e-3", 5, 0.005},
		{"2.5e-3", 0, 0.0025},
		{"1.5E+2 + x", 1, 151},
		{".5*x", 4, 2},
	}
	for _, tc := range cases {
		v, err := expr.Evaluate(tc.src, tc.x)
		require.NoError(s.T(), err, tc.src)
		require.InDelta(s.T(), tc.want, v, 1e-15, tc.src)
	}
}

// TestJuxtaposition: implicit multiplication is not accepted.
func (s *EvaluateSuite) TestJuxtaposition() {
	for _, src := range []string{"(x)(x)", "2(x)", "2x", "x x", "sin x", "(x+1)2", "sin(x)(x)"} {
		_, err := expr.Evaluate(src, 2)
		require.ErrorIs(s.T(), err, expr.ErrSyntax, src)
	}
}

// TestNonFinite: NaN/Inf results and sample points fail with ErrNonFinite.
func (s *EvaluateSuite) TestNonFinite() {
	_, err := expr.Evaluate("1/x", 0)
	require.ErrorIs(s.T(), err, expr.ErrNonFinite)

	_, err = expr.Evaluate("sqrt(x)", -1)
	require.ErrorIs(s.T(), err, expr.ErrNonFinite)

	_, err = expr.Evaluate("log(x)", 0)
	require.ErrorIs(s.T(), err, expr.ErrNonFinite)

	_, err = expr.Evaluate("x", math.Inf(1))
	require.ErrorIs(s.T(), err, expr.ErrNonFinite)
}

// TestMalformed: syntax problems surface at evaluation time.
func (s *EvaluateSuite) TestMalformed() {
	f := expr.Compile("2 +")
	require.Equal(s.T(), "2 +", f.String())

	_, err := f.Eval(1)
	require.ErrorIs(s.T(), err, expr.ErrSyntax)

	_, err = expr.Evaluate("y + 1", 1)
	require.ErrorIs(s.T(), err, expr.ErrSyntax)

	_, err = expr.Evaluate("(x + 1", 1)
	require.ErrorIs(s.T(), err, expr.ErrSyntax)

	for _, src := range []string{"xx + x", "exp(x)", "x = 1", "2 ^", "1e", "x $ 2", "sin()"} {
		_, err = expr.Evaluate(src, 1)
		require.ErrorIs(s.T(), err, expr.ErrSyntax, src)
	}
}

// TestEmpty covers blank input and the zero Func.
func (s *EvaluateSuite) TestEmpty() {
	_, err := expr.Evaluate("   ", 1)
	require.ErrorIs(s.T(), err, expr.ErrEmptyExpression)

	var zero expr.Func
	_, err = zero.Eval(1)
	require.ErrorIs(s.T(), err, expr.ErrEmptyExpression)
}

// TestNotNumeric: boolean results are rejected.
func (s *EvaluateSuite) TestNotNumeric() {
	_, err := expr.Evaluate("x > 1", 2)
	require.ErrorIs(s.T(), err, expr.ErrNotNumeric)
}

// TestIdempotent: identical inputs give bit-identical outputs.
func (s *EvaluateSuite) TestIdempotent() {
	f := expr.Compile("sin(x)/x + x^0.5")
	a, err := f.Eval(0.731)
	require.NoError(s.T(), err)
	b, err := f.Eval(0.731)
	require.NoError(s.T(), err)
	require.Equal(s.T(), math.Float64bits(a), math.Float64bits(b))
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Arithmetic(t *testing.T) {
	g := New()
	cases := []struct {
		expr string
		want float64
	}{
		{expr: "2+2", want: 4},
		{expr: "2+3*4", want: 14},
		{expr: "(2+3)*4", want: 20},
		{expr: "1/4", want: 0.25},
		{expr: "7%3", want: 1},
		{expr: "7.5%2", want: 1.5},
		{expr: "2^10", want: 1024},
		{expr: "10^(2)", want: 100},
		{expr: "-3+1", want: -2},
		{expr: "0.", want: 0},
		{expr: "0.5*4", want: 2},
		{expr: "-2^2", want: -4},
		{expr: "-3^2+1", want: -8},
		{expr: "2^3^2", want: 512},
		{expr: "2^-1", want: 0.5},
		{expr: "(-2)^2", want: 4},
		{expr: "1-2^2*3", want: -11},
		{expr: "sqrt(2^4)^2", want: 16},
	}
	for _, tc := range cases {
		got, err := g.Eval(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.InDelta(t, tc.want, got, 1e-12, tc.expr)
	}
}

func TestEval_FunctionsAndConstants(t *testing.T) {
	g := New()
	cases := []struct {
		expr string
		want float64
	}{
		{expr: "sin(0)", want: 0},
		{expr: "cos(0)", want: 1},
		{expr: "tan(0)", want: 0},
		{expr: "asin(1)", want: math.Pi / 2},
		{expr: "acos(1)", want: 0},
		{expr: "atan(1)", want: math.Pi / 4},
		{expr: "log10(1000)", want: 3},
		{expr: "ln(e)", want: 1},
		{expr: "sqrt(16)", want: 4},
		{expr: "e^(0)", want: 1},
		{expr: "3^2", want: 9},
		{expr: "sqrt(9)+log10(100)", want: 5},
	}
	for _, tc := range cases {
		got, err := g.Eval(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.InDelta(t, tc.want, got, 1e-12, tc.expr)
	}
}

func TestEval_NonFiniteResultsAreReturned(t *testing.T) {
	g := New()

	got, err := g.Eval("sqrt(-1)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = g.Eval("ln(0)")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))
}

func TestEval_DivideByZero(t *testing.T) {
	g := New()
	for _, expr := range []string{
		"5/0",
		"5/0.",
		"5/-0",
		"1+5/(2-2)",
		"5/sin(0)",
		"5/0^2",
		"(5/0)*3",
	} {
		_, err := g.Eval(expr)
		assert.ErrorIs(t, err, ErrDivideByZero, expr)
	}
}

func TestEval_NonZeroDivisorIsNotFlagged(t *testing.T) {
	g := New()
	for _, expr := range []string{"0/5", "5/(0+1)", "5/cos(0)", "6/2^0"} {
		_, err := g.Eval(expr)
		assert.NoError(t, err, expr)
	}
}

func TestEval_SyntaxErrors(t *testing.T) {
	g := New()
	for _, expr := range []string{"", "   ", "3+4)", "2+*3", "1..2", "foo(2)"} {
		_, err := g.Eval(expr)
		assert.Error(t, err, expr)
	}
}

func TestEval_UnknownVariable(t *testing.T) {
	_, err := New().Eval("x+1")
	assert.Error(t, err)
}

func TestEval_NonNumericResult(t *testing.T) {
	_, err := New().Eval("1 > 0")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "(10 ** (2))", translate("10^(2)"))
	assert.Equal(t, "2 + 3", translate("2+3"))
	assert.Equal(t, "5 /  - 0", translate("5/-0"))
}

func TestGroupPowers(t *testing.T) {
	cases := map[string]string{
		"2+3":          "2+3",
		"-2^2":         "-(2^2)",
		"2^3^2":        "(2^(3^2))",
		"2^-1":         "(2^(-1))",
		"e^(1+1)":      "(e^(1+1))",
		"sin(2^3^2)":   "sin((2^(3^2)))",
		"(1+2^2)^2":    "((1+(2^2))^2)",
		"log10(10^(2)": "log10((10^(2))",
		"2^":           "2^",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupPowers(in), in)
	}
}

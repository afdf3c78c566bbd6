package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

var (
	// ErrDivideByZero reports a division whose divisor evaluates to zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrSyntax reports an expression govaluate could not parse.
	ErrSyntax = errors.New("syntax error")
	// ErrNotNumeric reports a result (or argument) that is not a number.
	ErrNotNumeric = errors.New("not a number")
)

// Govaluate evaluates calculator expressions with govaluate.
//
// A Govaluate is immutable after New and may be shared.
type Govaluate struct {
	functions map[string]govaluate.ExpressionFunction
	params    govaluate.MapParameters
}

func New() *Govaluate {
	params := make(govaluate.MapParameters, len(constants))
	for k, v := range constants {
		params[k] = v
	}
	return &Govaluate{
		functions: expressionFunctions(),
		params:    params,
	}
}

// Eval parses and evaluates expr.
//
// Non-finite results are returned as-is; callers decide how to present them.
// A divisor that evaluates to zero yields ErrDivideByZero even though
// floating-point division would produce an infinity.
func (g *Govaluate) Eval(expr string) (float64, error) {
	src := translate(expr)
	if strings.TrimSpace(src) == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, g.functions)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	tokens := parsed.Tokens()
	if g.hasZeroDivisor(tokens) {
		return 0, ErrDivideByZero
	}

	out, err := parsed.Eval(g.params)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %T result", ErrNotNumeric, out)
	}
	return v, nil
}

// operatorSpacer rewrites calculator notation into govaluate notation.
// govaluate reads `^` as bitwise xor; the calculator means power. Its lexer
// also glues adjacent symbol runes into one token ("/-"), so every operator
// is padded with spaces, which end a token.
var operatorSpacer = strings.NewReplacer(
	"^", " ** ",
	"+", " + ",
	"-", " - ",
	"*", " * ",
	"/", " / ",
	"%", " % ",
)

func translate(expr string) string {
	expr = strings.Join(strings.Fields(expr), "")
	return operatorSpacer.Replace(groupPowers(expr))
}

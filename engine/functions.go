package engine

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

var unaryFunctions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"log10": math.Log10,
	"ln":    math.Log,
	"sqrt":  math.Sqrt,
}

var constants = map[string]interface{}{
	"e": math.E,
}

func expressionFunctions() map[string]govaluate.ExpressionFunction {
	out := make(map[string]govaluate.ExpressionFunction, len(unaryFunctions))
	for name, fn := range unaryFunctions {
		out[name] = wrapUnary(name, fn)
	}
	return out
}

func wrapUnary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s expects 1 argument, got %d", ErrSyntax, name, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a number", ErrNotNumeric, name)
		}
		return fn(x), nil
	}
}

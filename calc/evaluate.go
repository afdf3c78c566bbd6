package calc

import (
	"errors"
	"math"

	"github.com/iw2rmb/calcpad/engine"
)

const (
	// ErrorSentinel replaces any result that cannot be shown as a number.
	ErrorSentinel = "Error"
	// DivideByZeroMessage replaces the result of a division by zero unless
	// the evaluator collapses it into ErrorSentinel.
	DivideByZeroMessage = "cannot divide by zero"
)

// IsSentinel reports whether s is one of the failure strings an evaluation
// can leave on the display.
func IsSentinel(s string) bool {
	return s == ErrorSentinel || s == DivideByZeroMessage
}

// Engine evaluates a balanced expression to a number.
type Engine interface {
	Eval(expr string) (float64, error)
}

type EvaluatorOptions struct {
	// Precision is the number of decimals kept before trimming.
	// Zero means DefaultPrecision.
	Precision int
	// CollapseDivideByZero reports division by zero as ErrorSentinel
	// instead of DivideByZeroMessage.
	CollapseDivideByZero bool
}

// Evaluator turns an expression into the string shown on the display.
type Evaluator struct {
	engine    Engine
	precision int
	collapse  bool
}

// NewEvaluator returns an Evaluator backed by eng, or by engine.New when eng
// is nil.
func NewEvaluator(eng Engine, opt EvaluatorOptions) *Evaluator {
	if eng == nil {
		eng = engine.New()
	}
	if opt.Precision <= 0 {
		opt.Precision = DefaultPrecision
	}
	return &Evaluator{
		engine:    eng,
		precision: opt.Precision,
		collapse:  opt.CollapseDivideByZero,
	}
}

// Evaluate never fails: every outcome is a display string.
func (ev *Evaluator) Evaluate(expr string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ErrorSentinel
		}
	}()

	v, err := ev.engine.Eval(expr)
	switch {
	case errors.Is(err, engine.ErrDivideByZero):
		if ev.collapse {
			return ErrorSentinel
		}
		return DivideByZeroMessage
	case err != nil:
		return ErrorSentinel
	case math.IsNaN(v) || math.IsInf(v, 0):
		return ErrorSentinel
	}
	return FormatPrecision(v, ev.precision)
}

// Precision returns the number of decimals results are rounded to.
func (ev *Evaluator) Precision() int { return ev.precision }

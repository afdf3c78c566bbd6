package engine

import "github.com/Knetic/govaluate"

// hasZeroDivisor reports whether the right operand of any `/` evaluates to
// zero. Each operand is isolated from the token stream and evaluated on its
// own; operands that fail to evaluate are left for the full evaluation to
// report.
func (g *Govaluate) hasZeroDivisor(tokens []govaluate.ExpressionToken) bool {
	for i, tok := range tokens {
		if !isModifier(tok, "/") {
			continue
		}
		end, ok := operandEnd(tokens, i+1)
		if !ok {
			continue
		}
		operand := append([]govaluate.ExpressionToken(nil), tokens[i+1:end]...)
		sub, err := govaluate.NewEvaluableExpressionFromTokens(operand)
		if err != nil {
			continue
		}
		v, err := sub.Eval(g.params)
		if err != nil {
			continue
		}
		if f, ok := v.(float64); ok && f == 0 {
			return true
		}
	}
	return false
}

// operandEnd returns the exclusive end of the operand starting at i: optional
// prefix operators, a primary (number, variable, function call or
// parenthesized group), then any chain of `**` operands, which bind tighter
// than division.
func operandEnd(tokens []govaluate.ExpressionToken, i int) (int, bool) {
	for i < len(tokens) && tokens[i].Kind == govaluate.PREFIX {
		i++
	}
	if i >= len(tokens) {
		return 0, false
	}

	switch tokens[i].Kind {
	case govaluate.NUMERIC, govaluate.VARIABLE:
		i++
	case govaluate.FUNCTION:
		end, ok := groupEnd(tokens, i+1)
		if !ok {
			return 0, false
		}
		i = end
	case govaluate.CLAUSE:
		end, ok := groupEnd(tokens, i)
		if !ok {
			return 0, false
		}
		i = end
	default:
		return 0, false
	}

	for i < len(tokens) && isModifier(tokens[i], "**") {
		end, ok := operandEnd(tokens, i+1)
		if !ok {
			return 0, false
		}
		i = end
	}
	return i, true
}

// groupEnd returns the index after the clause that closes the one opened at i.
func groupEnd(tokens []govaluate.ExpressionToken, i int) (int, bool) {
	if i >= len(tokens) || tokens[i].Kind != govaluate.CLAUSE {
		return 0, false
	}
	depth := 0
	for ; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case govaluate.CLAUSE:
			depth++
		case govaluate.CLAUSE_CLOSE:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func isModifier(tok govaluate.ExpressionToken, op string) bool {
	if tok.Kind != govaluate.MODIFIER {
		return false
	}
	s, ok := tok.Value.(string)
	return ok && s == op
}

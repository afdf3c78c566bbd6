package calc

import "strings"

// Balance appends the closing parentheses expr is missing. Excess closers are
// left in place for the evaluator to reject.
func Balance(expr string) string {
	missing := strings.Count(expr, "(") - strings.Count(expr, ")")
	if missing <= 0 {
		return expr
	}
	return expr + strings.Repeat(")", missing)
}

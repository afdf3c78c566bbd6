package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/calcpad/internal/grapheme"
)

var (
	ErrRepeatedTrig     = errors.New("repeated trigonometric functions are not allowed")
	ErrRepeatedLog      = errors.New("repeated log functions are not allowed")
	ErrLeadingZeros     = errors.New("an expression cannot start with 00")
	ErrRepeatedDecimal  = errors.New("consecutive decimal points are not allowed")
	ErrRepeatedOperator = errors.New("consecutive operators are not allowed")
)

// RejectError is returned when an insertion is refused.
type RejectError struct {
	Text string
	Err  error
}

func (e *RejectError) Error() string { return fmt.Sprintf("insert %q: %v", e.Text, e.Err) }

func (e *RejectError) Unwrap() error { return e.Err }

// Silent reports whether a rejection should be dropped without telling the
// user.
func Silent(err error) bool {
	return errors.Is(err, ErrRepeatedOperator) || errors.Is(err, ErrLeadingZeros)
}

var trigTokens = []string{"sin(", "cos(", "tan(", "asin(", "acos(", "atan("}

const logToken = "log10("

const operators = "+-*/%^"

// IsOperator reports whether c is one of + - * / % ^.
func IsOperator(c string) bool {
	return len(c) == 1 && strings.Contains(operators, c)
}

// State is an expression and a cursor position in grapheme clusters.
// A Cursor outside [0, len(Expr)] means "at the end".
type State struct {
	Expr   string
	Cursor int
}

// Edit is the effect of one insertion on a State.
type Edit struct {
	// Reset is set when a displayed sentinel is cleared before inserting.
	Reset bool
	At    int
	Text  string
}

// Apply returns s with e applied.
func (e Edit) Apply(s State) State {
	if e.Reset {
		s = State{}
	}
	if e.Text == "" {
		return s
	}
	clusters := grapheme.Split(s.Expr)
	at := normalizeCursor(e.At, len(clusters))
	ins := grapheme.Split(e.Text)

	out := make([]string, 0, len(clusters)+len(ins))
	out = append(out, clusters[:at]...)
	out = append(out, ins...)
	out = append(out, clusters[at:]...)
	return State{Expr: grapheme.Join(out), Cursor: at + len(ins)}
}

// Plan validates inserting text into s and returns the edit to apply.
//
// Rules, in order:
//   - a displayed sentinel is cleared first;
//   - a trig function token or log10( already present is refused;
//   - into an empty expression "00" is refused and "0" or "." become "0.";
//   - "." right after "." is refused;
//   - a single operator right after an operator is refused.
//
// A refused insertion returns a *RejectError. Its Edit may still carry
// Reset, since clearing a sentinel does not depend on the insertion.
func Plan(s State, text string) (Edit, error) {
	var e Edit
	if text == "" {
		return e, nil
	}

	expr := s.Expr
	if IsSentinel(expr) {
		e.Reset = true
		expr = ""
	}

	for _, tok := range trigTokens {
		if text == tok && containsToken(expr, tok) {
			return e, &RejectError{Text: text, Err: ErrRepeatedTrig}
		}
	}
	if text == logToken && containsToken(expr, logToken) {
		return e, &RejectError{Text: text, Err: ErrRepeatedLog}
	}

	if expr == "" {
		switch text {
		case "00":
			return e, &RejectError{Text: text, Err: ErrLeadingZeros}
		case "0", ".":
			text = "0."
		}
	}

	clusters := grapheme.Split(expr)
	cursor := s.Cursor
	if e.Reset {
		cursor = 0
	}
	cursor = normalizeCursor(cursor, len(clusters))
	prev := grapheme.At(clusters, cursor-1)

	if text == "." && prev == "." {
		return e, &RejectError{Text: text, Err: ErrRepeatedDecimal}
	}
	if IsOperator(text) && IsOperator(prev) {
		return e, &RejectError{Text: text, Err: ErrRepeatedOperator}
	}

	e.At = cursor
	e.Text = text
	return e, nil
}

// Insert applies text to s following the rules of Plan. On rejection the
// returned State is s, except that a displayed sentinel is already cleared.
func Insert(s State, text string) (State, error) {
	e, err := Plan(s, text)
	if err != nil {
		if e.Reset {
			return State{}, err
		}
		return s, err
	}
	return e.Apply(s), nil
}

// Delete removes the cluster before the cursor. At position 0 it is a no-op.
func Delete(s State) State {
	clusters := grapheme.Split(s.Expr)
	cursor := normalizeCursor(s.Cursor, len(clusters))
	if cursor == 0 {
		return s
	}
	out := make([]string, 0, len(clusters)-1)
	out = append(out, clusters[:cursor-1]...)
	out = append(out, clusters[cursor:]...)
	return State{Expr: grapheme.Join(out), Cursor: cursor - 1}
}

func normalizeCursor(cursor, n int) int {
	if cursor < 0 || cursor > n {
		return n
	}
	return cursor
}

// containsToken reports whether tok occurs in expr as a whole function name:
// "sin(" inside "asin(" does not count.
func containsToken(expr, tok string) bool {
	for off := 0; off < len(expr); {
		i := strings.Index(expr[off:], tok)
		if i < 0 {
			return false
		}
		i += off
		if i == 0 || !isLetter(expr[i-1]) {
			return true
		}
		off = i + 1
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

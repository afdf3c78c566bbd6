package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestInsert_EmptyBufferZeroOrDotBecomesZeroDot(t *testing.T) {
	for _, text := range []string{"0", "."} {
		got, err := Insert(State{}, text)
		if err != nil {
			t.Fatalf("insert %q: unexpected error %v", text, err)
		}
		if got != (State{Expr: "0.", Cursor: 2}) {
			t.Fatalf("insert %q: got %+v, want {0. 2}", text, got)
		}
	}
}

func TestInsert_EmptyBufferDoubleZeroIsNoOp(t *testing.T) {
	got, err := Insert(State{}, "00")
	if !errors.Is(err, ErrLeadingZeros) {
		t.Fatalf("err=%v, want ErrLeadingZeros", err)
	}
	if got != (State{}) {
		t.Fatalf("state=%+v, want empty", got)
	}
}

func TestInsert_DoubleZeroAfterDigitIsAllowed(t *testing.T) {
	got, err := Insert(State{Expr: "1", Cursor: 1}, "00")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Expr != "100" {
		t.Fatalf("expr=%q, want %q", got.Expr, "100")
	}
}

func TestInsert_RepeatedTrigIsRejected(t *testing.T) {
	s, err := Insert(State{}, "sin(")
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	s, err = Insert(s, "2")
	if err != nil {
		t.Fatalf("digit insert: %v", err)
	}

	got, err := Insert(s, "sin(")
	if !errors.Is(err, ErrRepeatedTrig) {
		t.Fatalf("err=%v, want ErrRepeatedTrig", err)
	}
	if got != s {
		t.Fatalf("state changed on rejection: got %+v, want %+v", got, s)
	}
	if n := strings.Count(got.Expr, "sin("); n != 1 {
		t.Fatalf("sin( count=%d, want 1", n)
	}

	var rej *RejectError
	if !errors.As(err, &rej) || rej.Text != "sin(" {
		t.Fatalf("expected *RejectError for %q, got %v", "sin(", err)
	}
}

func TestInsert_TrigTokensAreMatchedAsWholeNames(t *testing.T) {
	s := State{Expr: "asin(1)+", Cursor: -1}
	got, err := Insert(s, "sin(")
	if err != nil {
		t.Fatalf("sin( after asin( must be allowed: %v", err)
	}
	if got.Expr != "asin(1)+sin(" {
		t.Fatalf("expr=%q, want %q", got.Expr, "asin(1)+sin(")
	}

	if _, err := Insert(got, "asin("); !errors.Is(err, ErrRepeatedTrig) {
		t.Fatalf("err=%v, want ErrRepeatedTrig", err)
	}
}

func TestInsert_DifferentTrigFunctionsAreAllowed(t *testing.T) {
	s := State{}
	for _, tok := range []string{"sin(", "cos(", "tan("} {
		var err error
		if s, err = Insert(s, tok); err != nil {
			t.Fatalf("insert %q: %v", tok, err)
		}
	}
	if got, want := s.Expr, "sin(cos(tan("; got != want {
		t.Fatalf("expr=%q, want %q", got, want)
	}
}

func TestInsert_RepeatedLogIsRejected(t *testing.T) {
	s := State{Expr: "log10(5)*", Cursor: -1}
	if _, err := Insert(s, "log10("); !errors.Is(err, ErrRepeatedLog) {
		t.Fatalf("err=%v, want ErrRepeatedLog", err)
	}
	if _, err := Insert(s, "ln("); err != nil {
		t.Fatalf("ln( must be allowed: %v", err)
	}
}

func TestInsert_RepeatedDecimalIsRejected(t *testing.T) {
	s := State{Expr: "3.", Cursor: 2}
	got, err := Insert(s, ".")
	if !errors.Is(err, ErrRepeatedDecimal) {
		t.Fatalf("err=%v, want ErrRepeatedDecimal", err)
	}
	if got != s {
		t.Fatalf("state=%+v, want %+v", got, s)
	}

	// Only the cluster immediately before the cursor matters.
	got, err = Insert(State{Expr: "3.", Cursor: 1}, ".")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Expr != "3.." {
		t.Fatalf("expr=%q, want %q", got.Expr, "3..")
	}
}

func TestInsert_RepeatedOperatorIsRejected(t *testing.T) {
	for _, prev := range []string{"+", "-", "*", "/", "%", "^"} {
		for _, op := range []string{"+", "-", "*", "/", "%", "^"} {
			s := State{Expr: "2" + prev, Cursor: 2}
			got, err := Insert(s, op)
			if !errors.Is(err, ErrRepeatedOperator) {
				t.Fatalf("%q after %q: err=%v, want ErrRepeatedOperator", op, prev, err)
			}
			if got != s {
				t.Fatalf("%q after %q: state=%+v, want %+v", op, prev, got, s)
			}
		}
	}
}

func TestInsert_MultiCharacterTokenAfterOperatorIsAllowed(t *testing.T) {
	got, err := Insert(State{Expr: "3+", Cursor: 2}, "sqrt(")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Expr != "3+sqrt(" {
		t.Fatalf("expr=%q, want %q", got.Expr, "3+sqrt(")
	}
}

func TestInsert_OperatorAtStartIsAllowed(t *testing.T) {
	got, err := Insert(State{}, "-")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != (State{Expr: "-", Cursor: 1}) {
		t.Fatalf("state=%+v", got)
	}
}

func TestInsert_SplicesAtCursor(t *testing.T) {
	got, err := Insert(State{Expr: "23", Cursor: 1}, "+")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != (State{Expr: "2+3", Cursor: 2}) {
		t.Fatalf("state=%+v, want {2+3 2}", got)
	}
}

func TestInsert_InvalidCursorMeansEnd(t *testing.T) {
	for _, cursor := range []int{-1, 99} {
		got, err := Insert(State{Expr: "12", Cursor: cursor}, "3")
		if err != nil {
			t.Fatalf("cursor %d: unexpected error %v", cursor, err)
		}
		if got != (State{Expr: "123", Cursor: 3}) {
			t.Fatalf("cursor %d: state=%+v, want {123 3}", cursor, got)
		}
	}
}

func TestInsert_SentinelIsClearedFirst(t *testing.T) {
	for _, sentinel := range []string{ErrorSentinel, DivideByZeroMessage} {
		got, err := Insert(State{Expr: sentinel, Cursor: -1}, "7")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", sentinel, err)
		}
		if got != (State{Expr: "7", Cursor: 1}) {
			t.Fatalf("%q: state=%+v, want {7 1}", sentinel, got)
		}

		got, err = Insert(State{Expr: sentinel, Cursor: -1}, ".")
		if err != nil {
			t.Fatalf("%q: unexpected error %v", sentinel, err)
		}
		if got.Expr != "0." {
			t.Fatalf("%q: expr=%q, want %q", sentinel, got.Expr, "0.")
		}
	}
}

func TestInsert_SentinelClearSurvivesRejection(t *testing.T) {
	got, err := Insert(State{Expr: ErrorSentinel, Cursor: 5}, "00")
	if !errors.Is(err, ErrLeadingZeros) {
		t.Fatalf("err=%v, want ErrLeadingZeros", err)
	}
	if got != (State{}) {
		t.Fatalf("state=%+v, want cleared", got)
	}
}

func TestInsert_EmptyTextIsNoOp(t *testing.T) {
	s := State{Expr: "1", Cursor: 1}
	got, err := Insert(s, "")
	if err != nil || got != s {
		t.Fatalf("got %+v, %v; want %+v, nil", got, err, s)
	}
}

func TestPlan_ReportsEdit(t *testing.T) {
	e, err := Plan(State{Expr: "12", Cursor: 1}, "*")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if e != (Edit{At: 1, Text: "*"}) {
		t.Fatalf("edit=%+v", e)
	}

	e, err = Plan(State{Expr: ErrorSentinel}, "0")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if e != (Edit{Reset: true, At: 0, Text: "0."}) {
		t.Fatalf("edit=%+v", e)
	}
}

func TestSilent(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{err: &RejectError{Text: "+", Err: ErrRepeatedOperator}, want: true},
		{err: &RejectError{Text: "00", Err: ErrLeadingZeros}, want: true},
		{err: &RejectError{Text: "sin(", Err: ErrRepeatedTrig}, want: false},
		{err: &RejectError{Text: "log10(", Err: ErrRepeatedLog}, want: false},
		{err: &RejectError{Text: ".", Err: ErrRepeatedDecimal}, want: false},
	}
	for _, tc := range cases {
		if got := Silent(tc.err); got != tc.want {
			t.Fatalf("Silent(%v)=%v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestDelete(t *testing.T) {
	cases := []struct {
		in   State
		want State
	}{
		{in: State{}, want: State{}},
		{in: State{Expr: "12", Cursor: 0}, want: State{Expr: "12", Cursor: 0}},
		{in: State{Expr: "12", Cursor: 2}, want: State{Expr: "1", Cursor: 1}},
		{in: State{Expr: "12", Cursor: 1}, want: State{Expr: "2", Cursor: 0}},
		{in: State{Expr: "12", Cursor: -1}, want: State{Expr: "1", Cursor: 1}},
		{in: State{Expr: "2·√", Cursor: 3}, want: State{Expr: "2·", Cursor: 2}},
	}
	for _, tc := range cases {
		if got := Delete(tc.in); got != tc.want {
			t.Fatalf("Delete(%+v)=%+v, want %+v", tc.in, got, tc.want)
		}
	}
}

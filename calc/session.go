package calc

import (
	"io"
	"log/slog"

	"github.com/iw2rmb/calcpad/buffer"
)

type SessionOptions struct {
	HistoryLimit int // forwarded to buffer.Options
	Evaluator    *Evaluator
	Logger       *slog.Logger
}

// Session owns the expression buffer of one calculator and applies the
// insertion rules to it.
type Session struct {
	buf  *buffer.Buffer
	bopt buffer.Options
	eval *Evaluator
	log  *slog.Logger
}

// NewSession starts a session on text with the cursor at its end.
func NewSession(text string, opt SessionOptions) *Session {
	if opt.Evaluator == nil {
		opt.Evaluator = NewEvaluator(nil, EvaluatorOptions{})
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	bopt := buffer.Options{HistoryLimit: opt.HistoryLimit}
	s := &Session{
		buf:  buffer.New(text, bopt),
		bopt: bopt,
		eval: opt.Evaluator,
		log:  opt.Logger,
	}
	s.buf.Move(buffer.DirEnd)
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Text() string { return s.buf.Text() }

func (s *Session) State() State {
	return State{Expr: s.buf.Text(), Cursor: s.buf.Cursor()}
}

// ShowsSentinel reports whether the display currently holds a failure string.
func (s *Session) ShowsSentinel() bool { return IsSentinel(s.buf.Text()) }

// Insert inserts text at the buffer cursor.
func (s *Session) Insert(text string) error {
	return s.InsertAt(s.buf.Cursor(), text)
}

// InsertAt inserts text at cursor. A negative or out-of-range cursor means the
// end of the expression.
func (s *Session) InsertAt(cursor int, text string) error {
	e, err := Plan(State{Expr: s.buf.Text(), Cursor: cursor}, text)
	if e.Reset {
		s.buf.Clear()
	}
	if err != nil {
		s.log.Debug("insert rejected", "text", text, "expr", s.buf.Text(), "err", err)
		return err
	}
	if e.Text == "" {
		return nil
	}
	s.buf.InsertAt(e.At, e.Text)
	return nil
}

// Delete removes the cluster before the cursor.
func (s *Session) Delete() { s.buf.DeleteBackward() }

// Clear empties the expression.
func (s *Session) Clear() { s.buf.Clear() }

// Equals balances and evaluates the expression, then replaces it with the
// result. Errors land in the buffer as sentinels like any other result.
func (s *Session) Equals() string {
	expr := s.buf.Text()
	balanced := Balance(expr)
	out := s.eval.Evaluate(balanced)
	s.log.Debug("evaluated", "expr", expr, "balanced", balanced, "result", out)
	s.buf.Reset(out)
	return out
}

func (s *Session) Undo() bool { return s.buf.Undo() }

func (s *Session) Redo() bool { return s.buf.Redo() }

// Restore replaces the buffer with one holding a saved expression, cursor at
// the end, and empty history. Callers must re-read Buffer afterwards.
func (s *Session) Restore(text string) {
	s.buf = buffer.New(text, s.bopt)
	s.buf.Move(buffer.DirEnd)
}

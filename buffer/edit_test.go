package buffer

import "testing"

func TestBuffer_InsertText_AtCursor(t *testing.T) {
	b := New("12", Options{})
	b.SetCursor(1)
	v := b.Version()

	b.InsertText("+")
	if got, want := b.Text(), "1+2"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_InsertAt_MovesCursorPastText(t *testing.T) {
	b := New("2", Options{})

	b.InsertAt(0, "sin(")
	if got, want := b.Text(), "sin(2"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.InsertAt(99, ")")
	if got, want := b.Text(), "sin(2)"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 6; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_InsertText_EmptyIsNoOp(t *testing.T) {
	b := New("1", Options{})
	v := b.Version()
	b.InsertText("")
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("expected no undo entry")
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("1+√", Options{})
	b.SetCursor(3)

	b.DeleteBackward()
	if got, want := b.Text(), "1+"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.SetCursor(0)
	v := b.Version()
	b.DeleteBackward()
	if got, want := b.Text(), "1+"; got != want {
		t.Fatalf("text after no-op=%q, want %q", got, want)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version after no-op=%d, want %d", got, v)
	}
}

func TestBuffer_DeleteBackward_EmptyBuffer(t *testing.T) {
	b := New("", Options{})
	b.DeleteBackward()
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change on empty buffer")
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("12", Options{})
	b.DeleteForward()
	if got, want := b.Text(), "2"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.SetCursor(1)
	b.DeleteForward()
	if got, want := b.Text(), "2"; got != want {
		t.Fatalf("text at EOL=%q, want %q", got, want)
	}
}

func TestBuffer_Reset_PlacesCursorAtEnd(t *testing.T) {
	b := New("2+3*4", Options{})
	b.SetCursor(1)

	b.Reset("14")
	if got, want := b.Text(), "14"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.SetCursor(0)
	b.Reset("14")
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor after same-text reset=%d, want %d", got, want)
	}

	b.Clear()
	if !b.IsEmpty() {
		t.Fatalf("expected empty after Clear, got %q", b.Text())
	}
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor after Clear=%d, want 0", got)
	}
}

func TestBuffer_Apply_ReplacesSpan(t *testing.T) {
	b := New("sin(1)", Options{})
	b.Apply(TextEdit{Span: Span{Start: 3, End: 0}, Text: "cos"})
	if got, want := b.Text(), "cos(1)"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	v := b.Version()
	b.Apply(TextEdit{Span: Span{Start: 0, End: 3}, Text: "cos"})
	if got := b.Version(); got != v {
		t.Fatalf("identical replacement must not bump version: got %d, want %d", got, v)
	}
}

package buffer

import "github.com/iw2rmb/calcpad/internal/grapheme"

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.Apply(TextEdit{Span: Span{Start: b.cursor, End: b.cursor}, Text: s})
}

// InsertAt moves the cursor to p and inserts text there.
func (b *Buffer) InsertAt(p int, s string) {
	if s == "" {
		b.SetCursor(p)
		return
	}
	p = ClampPos(p, len(b.clusters))
	b.Apply(TextEdit{Span: Span{Start: p, End: p}, Text: s})
}

// DeleteBackward applies backspace semantics: the cluster before the cursor
// is removed. At position 0 it is a no-op.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.Apply(TextEdit{Span: Span{Start: b.cursor - 1, End: b.cursor}})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.clusters) {
		return
	}
	b.Apply(TextEdit{Span: Span{Start: b.cursor, End: b.cursor + 1}})
}

// Reset replaces the whole line with text and places the cursor at its end.
// The replacement is a single undoable change.
func (b *Buffer) Reset(text string) {
	b.Apply(TextEdit{Span: Span{Start: 0, End: len(b.clusters)}, Text: text})
	b.SetCursor(len(b.clusters))
}

// Clear empties the line.
func (b *Buffer) Clear() { b.Reset("") }

// Apply replaces the span of e with its text. The cursor lands at the end of
// the inserted text. Edits that do not change the text are dropped.
func (b *Buffer) Apply(e TextEdit) {
	prev := b.snapshot()
	change := b.beginChange()

	nextCursor, applied, changed := b.replaceSpan(e.Span, e.Text)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceSpan(s Span, text string) (nextCursor int, applied AppliedEdit, changed bool) {
	s = NormalizeSpan(ClampSpan(s, len(b.clusters)))
	if s.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deleted := grapheme.Join(b.clusters[s.Start:s.End])
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	ins := grapheme.Split(text)
	out := make([]string, 0, len(b.clusters)-s.Len()+len(ins))
	out = append(out, b.clusters[:s.Start]...)
	out = append(out, ins...)
	out = append(out, b.clusters[s.End:]...)

	b.clusters = out
	nextCursor = s.Start + len(ins)
	applied = AppliedEdit{
		SpanBefore:  s,
		SpanAfter:   Span{Start: s.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

package buffer

import "github.com/iw2rmb/calcpad/internal/grapheme"

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	SpanBefore  Span
	SpanAfter   Span
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	AppliedEdits  []AppliedEdit
}

type changeBuilder struct {
	versionBefore uint64
	cursorBefore  int
	appliedEdits  []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore: b.version,
		cursorBefore:  b.cursor,
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.SpanBefore = NormalizeSpan(edit.SpanBefore)
	edit.SpanAfter = NormalizeSpan(edit.SpanAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		AppliedEdits:  append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		SpanBefore:  Span{Start: 0, End: grapheme.Count(beforeText)},
		SpanAfter:   Span{Start: 0, End: grapheme.Count(afterText)},
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

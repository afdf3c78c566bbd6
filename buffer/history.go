package buffer

import "github.com/iw2rmb/calcpad/internal/grapheme"

type bufferSnapshot struct {
	text   string
	cursor int
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.clusters = grapheme.Split(s.text)
	b.cursor = ClampPos(s.cursor, len(b.clusters))
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	b.textVersion++
	if applied, ok := replacementAppliedEdit(cur.text, prev.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	b.textVersion++
	if applied, ok := replacementAppliedEdit(cur.text, next.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}

package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

// Move moves the cursor one cluster or to a line edge.
func (b *Buffer) Move(dir MoveDir) {
	next := b.cursor
	switch dir {
	case DirLeft:
		next--
	case DirRight:
		next++
	case DirHome:
		next = 0
	case DirEnd:
		next = len(b.clusters)
	}
	b.SetCursor(next)
}

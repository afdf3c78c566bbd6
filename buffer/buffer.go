package buffer

import "github.com/iw2rmb/calcpad/internal/grapheme"

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
}

// Buffer is the pure expression state: clusters and cursor.
type Buffer struct {
	clusters    []string
	version     uint64
	textVersion uint64

	cursor int

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		clusters: grapheme.Split(text),
		cursor:   0,
		opt:      opt,
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the line length in clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

func (b *Buffer) IsEmpty() bool { return len(b.clusters) == 0 }

// ClusterAt returns the cluster at i, or "" when i is out of range.
func (b *Buffer) ClusterAt(i int) string { return grapheme.At(b.clusters, i) }

// Clusters returns a copy of the line split into clusters.
func (b *Buffer) Clusters() []string { return append([]string(nil), b.clusters...) }

// Version increments on every observable change (text or cursor).
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(p int) {
	next := ClampPos(p, len(b.clusters))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

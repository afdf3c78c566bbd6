package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/calcpad/keypad"
)

const (
	defaultCellWidth = 7
	minCellWidth     = 5

	displayRow   = 0
	statusRow    = 1
	keypadTopRow = 2
)

// lineLayout places the expression clusters on the display row.
//
// The expression is right-aligned with one trailing cell reserved for the
// cursor at the end. When it does not fit, the window scrolls so the cursor
// cell stays visible, preferring to show the end of the line.
type lineLayout struct {
	clusters []string
	starts   []int // absolute start cell of each cluster
	widths   []int
	total    int // cells including the reserved cursor cell

	width  int // display width
	offset int // first absolute cell shown
	pad    int // blank cells left of the text when it fits
}

func layoutLine(clusters []string, cursor, width int) lineLayout {
	l := lineLayout{
		clusters: clusters,
		starts:   make([]int, len(clusters)),
		widths:   make([]int, len(clusters)),
		width:    width,
	}
	cell := 0
	for i, c := range clusters {
		w := runewidth.StringWidth(c)
		if w <= 0 {
			w = 1
		}
		l.starts[i] = cell
		l.widths[i] = w
		cell += w
	}
	l.total = cell + 1

	if l.total <= width {
		l.pad = width - l.total
		return l
	}
	l.offset = l.total - width
	start, w := l.cursorCell(cursor)
	if start < l.offset {
		l.offset = start
	} else if start+w > l.offset+width {
		l.offset = start + w - width
	}
	return l
}

// cursorCell returns the absolute start and width of the cell the cursor sits
// on.
func (l lineLayout) cursorCell(cursor int) (int, int) {
	if cursor >= 0 && cursor < len(l.clusters) {
		return l.starts[cursor], l.widths[cursor]
	}
	return l.total - 1, 1
}

// clusterAt maps a display column to a cursor position.
func (l lineLayout) clusterAt(x int) int {
	abs := x - l.pad + l.offset
	if abs < 0 {
		return 0
	}
	for i := range l.clusters {
		if abs < l.starts[i]+l.widths[i] {
			return i
		}
	}
	return len(l.clusters)
}

func (m Model) cellWidth() int {
	cols := keypad.Columns()
	if m.width <= 0 || cols == 0 {
		return defaultCellWidth
	}
	if w := m.width / cols; w >= minCellWidth {
		return w
	}
	return minCellWidth
}

func (m Model) gridWidth() int { return m.cellWidth() * keypad.Columns() }

func (m Model) displayLayout() lineLayout {
	b := m.sess.Buffer()
	return layoutLine(b.Clusters(), b.Cursor(), m.gridWidth())
}

func (m Model) View() string {
	lines := []string{
		m.renderDisplay(),
		m.renderStatus(),
	}
	for row := 0; row < keypad.Rows(); row++ {
		lines = append(lines, m.renderKeypadRow(row))
	}
	if m.cfg.ShowHelp {
		lines = append(lines, m.help.View(m.cfg.KeyMap))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDisplay() string {
	st := m.cfg.Style
	l := m.displayLayout()
	cursor := m.sess.Buffer().Cursor()
	right := l.offset + l.width

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", l.pad))
	cell := l.offset
	for i, c := range l.clusters {
		start, end := l.starts[i], l.starts[i]+l.widths[i]
		if end <= l.offset || start >= right {
			continue
		}
		if start < l.offset || end > right {
			// Partially visible wide cluster.
			n := min(end, right) - max(start, l.offset)
			sb.WriteString(strings.Repeat(" ", n))
			cell += n
			continue
		}
		if i == cursor {
			sb.WriteString(st.Cursor.Render(c))
		} else {
			sb.WriteString(c)
		}
		cell += l.widths[i]
	}
	if cell < right {
		if cursor >= len(l.clusters) {
			sb.WriteString(st.Cursor.Render(" "))
		} else {
			sb.WriteString(" ")
		}
	}
	return st.Display.Render(sb.String())
}

func (m Model) renderStatus() string {
	mode := "   "
	if m.mode == keypad.InverseMode {
		mode = "INV"
	}
	s := mode
	if m.notice != "" {
		s += " " + m.notice
	}
	return m.cfg.Style.Status.Render(s)
}

func (m Model) renderKeypadRow(row int) string {
	cw := m.cellWidth()
	if row == len(keypad.Layout) {
		return m.renderButton(keypad.Equals, m.gridWidth())
	}
	var sb strings.Builder
	for col := 0; col < keypad.Columns(); col++ {
		b, ok := keypad.At(row, col)
		if !ok {
			sb.WriteString(strings.Repeat(" ", cw))
			continue
		}
		sb.WriteString(m.renderButton(b, cw))
	}
	return sb.String()
}

func (m Model) renderButton(b keypad.Button, width int) string {
	return m.buttonStyle(b).Render(center(m.Label(b), width))
}

func (m Model) buttonStyle(b keypad.Button) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case b == keypad.Equals:
		return st.Equals
	case b == keypad.Inverse:
		if m.mode == keypad.InverseMode {
			return st.InverseActive
		}
		return st.InverseIdle
	case keypad.HasInverse(b), b == keypad.ConstE:
		return st.Function
	case b.Kind() != keypad.KindInsert, b >= keypad.Add:
		return st.Operator
	default:
		return st.Digit
	}
}

// center pads s with spaces to width cells, truncating when it is wider.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

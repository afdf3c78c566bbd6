package editor

import "github.com/iw2rmb/calcpad/keypad"

// hit is what a screen cell maps to.
type hit struct {
	display bool
	cursor  int

	button keypad.Button
}

// hitTest maps component-local coordinates to a display position or a
// keypad button. (0,0) is the top-left of the display row.
func (m Model) hitTest(x, y int) (hit, bool) {
	if x < 0 || x >= m.gridWidth() {
		return hit{}, false
	}
	switch {
	case y == displayRow:
		return hit{display: true, cursor: m.displayLayout().clusterAt(x)}, true
	case y >= keypadTopRow && y < keypadTopRow+keypad.Rows():
		b, ok := keypad.At(y-keypadTopRow, x/m.cellWidth())
		if !ok {
			return hit{}, false
		}
		return hit{button: b}, true
	default:
		return hit{}, false
	}
}

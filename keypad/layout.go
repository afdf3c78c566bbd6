package keypad

// Layout is the keypad grid, top row first.
var Layout = [][]Button{
	{Inverse, AllClear, Backspace, Divide, Modulo},
	{Sin, Cos, Tan, Multiply, Power},
	{Log, Ln, Root, Subtract, ConstE},
	{Digit7, Digit8, Digit9, Add, OpenParen},
	{Digit4, Digit5, Digit6, Point, CloseParen},
	{Digit1, Digit2, Digit3, DoubleZero, Digit0},
}

// Columns returns the widest row length.
func Columns() int {
	n := 0
	for _, row := range Layout {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// At returns the button at grid cell (row, col). The row after the grid is
// the equals key across all columns.
func At(row, col int) (Button, bool) {
	if row < 0 || col < 0 {
		return 0, false
	}
	if row == len(Layout) {
		if col < Columns() {
			return Equals, true
		}
		return 0, false
	}
	if row > len(Layout) || col >= len(Layout[row]) {
		return 0, false
	}
	return Layout[row][col], true
}

// Rows returns the number of rows including the equals row.
func Rows() int { return len(Layout) + 1 }

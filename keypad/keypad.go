// Package keypad describes the calculator's buttons: their identities, the
// label each shows in primary and inverse mode, the token a label inserts,
// and the grid they are laid out in.
package keypad

// Button identifies a physical key on the pad, independent of its label.
type Button int

const (
	Digit0 Button = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	DoubleZero
	Point

	Add
	Subtract
	Multiply
	Divide
	Modulo
	Power
	OpenParen
	CloseParen
	ConstE

	Sin
	Cos
	Tan
	Log
	Root
	Ln

	AllClear
	Backspace
	Equals
	Inverse
)

// Kind tells an adapter what pressing a button does.
type Kind int

const (
	KindInsert Kind = iota
	KindClear
	KindDelete
	KindEquals
	KindToggle
)

func (b Button) Kind() Kind {
	switch b {
	case AllClear:
		return KindClear
	case Backspace:
		return KindDelete
	case Equals:
		return KindEquals
	case Inverse:
		return KindToggle
	default:
		return KindInsert
	}
}

// Mode selects which label set the function buttons show.
type Mode int

const (
	Primary Mode = iota
	InverseMode
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == InverseMode {
		return Primary
	}
	return InverseMode
}

func (m Mode) String() string {
	if m == InverseMode {
		return "inverse"
	}
	return "primary"
}

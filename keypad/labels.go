package keypad

var labels = map[Button]string{
	Digit0:     "0",
	Digit1:     "1",
	Digit2:     "2",
	Digit3:     "3",
	Digit4:     "4",
	Digit5:     "5",
	Digit6:     "6",
	Digit7:     "7",
	Digit8:     "8",
	Digit9:     "9",
	DoubleZero: "00",
	Point:      ".",
	Add:        "+",
	Subtract:   "-",
	Multiply:   "*",
	Divide:     "/",
	Modulo:     "%",
	Power:      "^",
	OpenParen:  "(",
	CloseParen: ")",
	ConstE:     "e",
	Sin:        "sin",
	Cos:        "cos",
	Tan:        "tan",
	Log:        "log",
	Root:       "√",
	Ln:         "ln",
	AllClear:   "AC",
	Backspace:  "⌫",
	Equals:     "=",
	Inverse:    "inv",
}

// inverseLabels overrides labels in InverseMode.
var inverseLabels = map[Button]string{
	Sin:  "asin",
	Cos:  "acos",
	Tan:  "atan",
	Log:  "10^x",
	Root: "^2",
	Ln:   "e^x",
}

// Label returns the text b shows in mode m.
func Label(m Mode, b Button) string {
	if m == InverseMode {
		if l, ok := inverseLabels[b]; ok {
			return l
		}
	}
	return labels[b]
}

// HasInverse reports whether b changes label with the mode.
func HasInverse(b Button) bool {
	_, ok := inverseLabels[b]
	return ok
}

// tokens maps function labels to the text they insert. Every other label
// inserts itself.
var tokens = map[string]string{
	"sin":  "sin(",
	"cos":  "cos(",
	"tan":  "tan(",
	"asin": "asin(",
	"acos": "acos(",
	"atan": "atan(",
	"log":  "log10(",
	"√":    "sqrt(",
	"10^x": "10^(",
	"e^x":  "e^(",
	"ln":   "ln(",
	"In":   "ln(",
}

// Token returns the text a button labelled label inserts.
func Token(label string) string {
	if t, ok := tokens[label]; ok {
		return t
	}
	return label
}

// Press returns the text inserting b in mode m, or "" for buttons that do not
// insert.
func Press(m Mode, b Button) string {
	if b.Kind() != KindInsert {
		return ""
	}
	return Token(Label(m, b))
}

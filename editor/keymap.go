package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the calculator key bindings.
//
// Digits, operators, parentheses, the point and `e` insert themselves and are
// not rebindable. Function bindings press the button in the current mode, so
// Sin inserts asin( while inverse mode is on.
type KeyMap struct {
	Left, Right, Home, End key.Binding

	Backspace, Delete key.Binding
	AllClear          key.Binding
	Equals            key.Binding
	Inverse           key.Binding

	Sin, Cos, Tan, Log, Ln, Root key.Binding

	Undo, Redo  key.Binding
	Copy, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		AllClear:  key.NewBinding(key.WithKeys("esc", "ctrl+l"), key.WithHelp("esc", "clear")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
		Inverse:   key.NewBinding(key.WithKeys("tab", "i"), key.WithHelp("tab", "inverse")),

		Sin:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sin")),
		Cos:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cos")),
		Tan:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tan")),
		Log:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		Ln:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "ln")),
		Root: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "√")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v", "p"), key.WithHelp("p", "paste")),
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.AllClear, k.Backspace, k.Inverse, k.Undo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.AllClear, k.Backspace, k.Delete},
		{k.Sin, k.Cos, k.Tan, k.Log, k.Ln, k.Root, k.Inverse},
		{k.Left, k.Right, k.Home, k.End},
		{k.Undo, k.Redo, k.Copy, k.Paste},
	}
}

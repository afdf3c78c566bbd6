package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/keypad"
)

// runeButtons maps typed runes onto the buttons they press.
var runeButtons = map[rune]keypad.Button{
	'0': keypad.Digit0,
	'1': keypad.Digit1,
	'2': keypad.Digit2,
	'3': keypad.Digit3,
	'4': keypad.Digit4,
	'5': keypad.Digit5,
	'6': keypad.Digit6,
	'7': keypad.Digit7,
	'8': keypad.Digit8,
	'9': keypad.Digit9,
	'.': keypad.Point,
	'+': keypad.Add,
	'-': keypad.Subtract,
	'*': keypad.Multiply,
	'/': keypad.Divide,
	'%': keypad.Modulo,
	'^': keypad.Power,
	'(': keypad.OpenParen,
	')': keypad.CloseParen,
	'e': keypad.ConstE,
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.notice = ""
		m.pasteText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	buf := m.sess.Buffer()

	switch {
	case key.Matches(msg, km.Left):
		buf.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		buf.Move(buffer.DirRight)
	case key.Matches(msg, km.Home):
		buf.Move(buffer.DirHome)
	case key.Matches(msg, km.End):
		buf.Move(buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		m = m.press(keypad.Backspace)
	case key.Matches(msg, km.Delete):
		m.notice = ""
		buf.DeleteForward()
	case key.Matches(msg, km.AllClear):
		m = m.press(keypad.AllClear)
	case key.Matches(msg, km.Equals):
		m = m.press(keypad.Equals)
	case key.Matches(msg, km.Inverse):
		m = m.press(keypad.Inverse)

	case key.Matches(msg, km.Sin):
		m = m.press(keypad.Sin)
	case key.Matches(msg, km.Cos):
		m = m.press(keypad.Cos)
	case key.Matches(msg, km.Tan):
		m = m.press(keypad.Tan)
	case key.Matches(msg, km.Log):
		m = m.press(keypad.Log)
	case key.Matches(msg, km.Ln):
		m = m.press(keypad.Ln)
	case key.Matches(msg, km.Root):
		m = m.press(keypad.Root)

	case key.Matches(msg, km.Undo):
		_ = m.sess.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.sess.Redo()

	case key.Matches(msg, km.Copy):
		m.copyExpression()
	case key.Matches(msg, km.Paste):
		m.notice = ""
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
			if b, ok := runeButtons[msg.Runes[0]]; ok {
				m = m.press(b)
			}
		}
	}

	return m, nil
}

func (m Model) copyExpression() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.sess.Text()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "err", err)
		return
	}
	m.pasteText(s)
}

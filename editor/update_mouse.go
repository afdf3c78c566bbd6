package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	h, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if h.display {
		m.sess.Buffer().SetCursor(h.cursor)
		return m, nil
	}
	return m.press(h.button), nil
}

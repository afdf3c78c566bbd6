package editor

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/calcpad/config"
	"github.com/iw2rmb/calcpad/keypad"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return c.err }

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return StyleFromTheme(r, config.Default().Theme)
}

func newTestModel(text string) Model {
	return New(Config{Text: text, Style: plainStyle()}).SetSize(35, 12)
}

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressAll(m Model, buttons ...keypad.Button) Model {
	for _, b := range buttons {
		m = m.Press(b)
	}
	return m
}

func assertText(t *testing.T, m Model, want string) {
	t.Helper()
	if got := m.Text(); got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

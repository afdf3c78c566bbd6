package editor

import (
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/calc"
	"github.com/iw2rmb/calcpad/keypad"
)

// Model is a Bubble Tea component that renders a calculator and routes keys,
// pastes and clicks to its session.
type Model struct {
	cfg  Config
	sess *calc.Session
	log  *slog.Logger

	mode   keypad.Mode
	notice string

	width int
	help  help.Model

	lastEvent ChangeEvent
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	m := Model{
		cfg: cfg,
		sess: calc.NewSession(cfg.Text, calc.SessionOptions{
			HistoryLimit: cfg.HistoryLimit,
			Evaluator:    cfg.Evaluator,
			Logger:       cfg.Logger,
		}),
		log:  cfg.Logger,
		help: help.New(),
	}
	m.help.Styles = helpStyles(cfg.Style.Help)
	m.lastEvent = buildChangeEvent(m.sess.Buffer(), m.mode)
	return m
}

func (m Model) Session() *calc.Session { return m.sess }

func (m Model) Buffer() *buffer.Buffer { return m.sess.Buffer() }

func (m Model) Text() string { return m.sess.Text() }

func (m Model) Mode() keypad.Mode { return m.mode }

// Notice returns the message shown for the last rejected input, if any.
func (m Model) Notice() string { return m.notice }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, _ int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.help.Width = width
	return m
}

// Restore replaces the expression with text, leaving the cursor at its end
// and history empty.
func (m Model) Restore(text string) Model {
	m.sess.Restore(text)
	m.notice = ""
	m.emitChange()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		m.emitChange()
		return m, cmd
	case tea.MouseMsg:
		m, cmd := m.updateMouse(msg)
		m.emitChange()
		return m, cmd
	default:
		return m, nil
	}
}

// Press acts on b as if it were clicked.
func (m Model) Press(b keypad.Button) Model {
	m = m.press(b)
	m.emitChange()
	return m
}

// Label returns the current label of b.
func (m Model) Label(b keypad.Button) string { return keypad.Label(m.mode, b) }

func (m Model) press(b keypad.Button) Model {
	m.notice = ""
	switch b.Kind() {
	case keypad.KindClear:
		m.sess.Clear()
	case keypad.KindDelete:
		m.sess.Delete()
	case keypad.KindEquals:
		m.sess.Equals()
	case keypad.KindToggle:
		m.mode = m.mode.Toggle()
	default:
		m.insert(keypad.Press(m.mode, b))
	}
	return m
}

// insert inserts tok at the cursor and records a notice for rejections the
// user should hear about.
func (m *Model) insert(tok string) bool {
	err := m.sess.Insert(tok)
	if err == nil {
		return true
	}
	var rej *calc.RejectError
	if errors.As(err, &rej) && !calc.Silent(err) {
		m.notice = rej.Err.Error()
	}
	return false
}

func (m *Model) emitChange() {
	ev := buildChangeEvent(m.sess.Buffer(), m.mode)
	if ev == m.lastEvent {
		return
	}
	m.lastEvent = ev
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

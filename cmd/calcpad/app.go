package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcpad/editor"
)

// app hosts the calculator and owns quitting.
type app struct {
	editor editor.Model
}

func newApp(cfg editor.Config) app {
	return app{editor: editor.New(cfg)}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

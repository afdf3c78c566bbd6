package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/calcpad/config"
)

// Style controls the calculator's rendering.
type Style struct {
	Display lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style

	Digit         lipgloss.Style
	Operator      lipgloss.Style
	Function      lipgloss.Style
	Equals        lipgloss.Style
	InverseActive lipgloss.Style
	InverseIdle   lipgloss.Style

	Help lipgloss.Style
}

func DefaultStyle() Style {
	return StyleFromTheme(lipgloss.DefaultRenderer(), config.Default().Theme)
}

// StyleFromTheme builds a Style from configured colours on renderer r.
func StyleFromTheme(r *lipgloss.Renderer, t config.Theme) Style {
	fg := lipgloss.Color(t.ButtonForeground)
	button := func(bg string) lipgloss.Style {
		return r.NewStyle().Foreground(fg).Background(lipgloss.Color(bg)).Bold(true)
	}
	return Style{
		Display:       r.NewStyle().Foreground(fg).Background(lipgloss.Color(t.Display)),
		Cursor:        r.NewStyle().Reverse(true),
		Status:        r.NewStyle().Foreground(lipgloss.Color(t.Status)).Italic(true),
		Digit:         button(t.Digit),
		Operator:      button(t.Operator),
		Function:      button(t.Function),
		Equals:        button(t.Equals),
		InverseActive: button(t.InverseActive),
		InverseIdle:   button(t.InverseIdle),
		Help:          r.NewStyle().Faint(true),
	}
}

// helpStyles applies st to every part of the help line.
func helpStyles(st lipgloss.Style) help.Styles {
	return help.Styles{
		Ellipsis:       st,
		ShortKey:       st,
		ShortDesc:      st,
		ShortSeparator: st,
		FullKey:        st,
		FullDesc:       st,
		FullSeparator:  st,
	}
}

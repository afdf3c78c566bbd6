package editor

import (
	"log/slog"

	"github.com/iw2rmb/calcpad/calc"
)

// Config configures the calculator Model.
type Config struct {
	// Initial expression; the cursor starts at its end.
	Text string

	// Forwarded to calc.SessionOptions. A nil Evaluator uses the govaluate
	// engine with default options.
	HistoryLimit int
	Evaluator    *calc.Evaluator

	// Nil means discard.
	Logger *slog.Logger

	Style    Style
	KeyMap   KeyMap
	ShowHelp bool

	// Optional clipboard used by the copy and paste bindings.
	Clipboard Clipboard

	// OnChange is called after every update that changed the expression,
	// the cursor or the keypad mode.
	OnChange func(ChangeEvent)
}

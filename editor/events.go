package editor

import (
	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/keypad"
)

type ChangeEvent struct {
	Version uint64
	Cursor  int
	Mode    keypad.Mode

	// Text is the whole expression line.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, mode keypad.Mode) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Mode:    mode,
		Text:    b.Text(),
	}
}

// Package editor provides a Bubble Tea calculator component backed by the
// calc and buffer packages.
//
// The package is a thin adapter: it translates keys, pastes and mouse clicks
// into keypad presses on a calc.Session and renders the expression line, a
// status line, the keypad and a help line. It owns the inverse-mode flag.
package editor

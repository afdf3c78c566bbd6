package editor

import (
	"strings"

	"github.com/iw2rmb/calcpad/internal/grapheme"
	"github.com/iw2rmb/calcpad/keypad"
)

// pasteFunctions are matched longest first so asin( wins over sin(.
var pasteFunctions = []string{
	"log10(", "asin(", "acos(", "atan(", "sqrt(",
	"sin(", "cos(", "tan(", "ln(",
}

// pasteTokens splits pasted text into the tokens a user could have typed.
// Whitespace is dropped, and so is anything no button can produce.
func pasteTokens(s string) []string {
	var out []string
	for s != "" {
		if tok, ok := functionPrefix(s); ok {
			out = append(out, tok)
			s = s[len(tok):]
			continue
		}
		c := grapheme.Split(s)[0]
		s = s[len(c):]
		if tok, ok := pasteCluster(c); ok {
			out = append(out, tok)
		}
	}
	return out
}

func functionPrefix(s string) (string, bool) {
	for _, f := range pasteFunctions {
		if strings.HasPrefix(s, f) {
			return f, true
		}
	}
	return "", false
}

func pasteCluster(c string) (string, bool) {
	if c == "√" {
		return keypad.Token(c), true
	}
	if len(c) != 1 {
		return "", false
	}
	if _, ok := runeButtons[rune(c[0])]; ok {
		return c, true
	}
	return "", false
}

// pasteText inserts each token of s through the insertion rules. Rejected
// tokens are skipped; the first audible rejection becomes the notice.
func (m *Model) pasteText(s string) {
	var notice string
	for _, tok := range pasteTokens(s) {
		if !m.insert(tok) && notice == "" {
			notice = m.notice
		}
	}
	m.notice = notice
	if n := m.notice; n != "" {
		m.log.Debug("paste partially rejected", "text", s, "notice", n)
	}
}

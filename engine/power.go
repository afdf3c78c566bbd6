package engine

import "strings"

// groupPowers parenthesizes every power chain so govaluate sees standard
// precedence: `^` binds tighter than a prefix sign and groups right to left.
// "-2^2" becomes "-(2^2)" and "2^3^2" becomes "(2^(3^2))". The result still
// uses `^`; translate maps it onto govaluate's `**`.
func groupPowers(s string) string {
	items := scanItems(s)
	var sb strings.Builder
	for i := 0; i < len(items); {
		if items[i].atom {
			if chain, next, ok := powerChain(items, i); ok {
				sb.WriteString(chain)
				i = next
				continue
			}
		}
		sb.WriteString(items[i].text)
		i++
	}
	return sb.String()
}

// item is either an atom (number, name, call or parenthesized group, with
// its insides already regrouped) or a single byte of anything else.
type item struct {
	text string
	atom bool
}

func scanItems(s string) []item {
	var out []item
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isNameStart(c):
			j := i + 1
			for j < len(s) && (isNameStart(s[j]) || isDigit(s[j])) {
				j++
			}
			if j < len(s) && s[j] == '(' {
				it, next := scanGroup(s, i, j)
				out = append(out, it)
				i = next
				continue
			}
			out = append(out, item{text: s[i:j], atom: true})
			i = j
		case isDigit(c) || c == '.':
			j := i + 1
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			out = append(out, item{text: s[i:j], atom: true})
			i = j
		case c == '(':
			it, next := scanGroup(s, i, i)
			out = append(out, it)
			i = next
		default:
			out = append(out, item{text: s[i : i+1]})
			i++
		}
	}
	return out
}

// scanGroup reads s[start:open] followed by the clause opened at open. An
// unclosed clause runs to the end of s and is not an atom.
func scanGroup(s string, start, open int) (item, int) {
	depth := 0
	for k := open; k < len(s); k++ {
		switch s[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				text := s[start:open] + "(" + groupPowers(s[open+1:k]) + ")"
				return item{text: text, atom: true}, k + 1
			}
		}
	}
	return item{text: s[start:open] + "(" + groupPowers(s[open+1:])}, len(s)
}

// powerChain folds `base ^ e1 ^ e2 ...` starting at items[i] into one
// right-associative group. Exponents may carry prefix signs.
func powerChain(items []item, i int) (string, int, bool) {
	var exps []string
	j := i + 1
	for j < len(items) && items[j].text == "^" {
		k := j + 1
		signs := ""
		for k < len(items) && (items[k].text == "-" || items[k].text == "+") {
			signs += items[k].text
			k++
		}
		if k >= len(items) || !items[k].atom {
			break
		}
		e := items[k].text
		if signs != "" {
			e = "(" + signs + e + ")"
		}
		exps = append(exps, e)
		j = k + 1
	}
	if len(exps) == 0 {
		return "", 0, false
	}

	r := exps[len(exps)-1]
	for n := len(exps) - 2; n >= 0; n-- {
		r = "(" + exps[n] + "^" + r + ")"
	}
	return "(" + items[i].text + "^" + r + ")", j, true
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

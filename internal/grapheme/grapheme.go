package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// At returns the cluster at index i, or "" when i is out of range.
func At(clusters []string, i int) string {
	if i < 0 || i >= len(clusters) {
		return ""
	}
	return clusters[i]
}

package buffer

// Span is a half-open cluster range of the line: [Start, End).
// Start <= End after NormalizeSpan.
type Span struct {
	Start int
	End   int
}

// TextEdit replaces the clusters in Span with Text.
type TextEdit struct {
	Span Span
	Text string
}

func NormalizeSpan(s Span) Span {
	if s.Start <= s.End {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

func (s Span) IsEmpty() bool { return s.Start == s.End }

func (s Span) Len() int {
	s = NormalizeSpan(s)
	return s.End - s.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into [0, n].
func ClampPos(p, n int) int {
	if n < 0 {
		n = 0
	}
	return clampInt(p, 0, n)
}

func ClampSpan(s Span, n int) Span {
	return Span{Start: ClampPos(s.Start, n), End: ClampPos(s.End, n)}
}

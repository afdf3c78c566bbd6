package calc

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals results are rounded to.
const DefaultPrecision = 6

// Format renders v with DefaultPrecision decimals and no trailing zeros.
func Format(v float64) string { return FormatPrecision(v, DefaultPrecision) }

// FormatPrecision renders v rounded to precision decimals, then strips
// trailing zeros and a trailing decimal point: 2.500000 -> "2.5",
// 2.000000 -> "2". A result that rounds to negative zero prints "0".
func FormatPrecision(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

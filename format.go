package scicalc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DisplayWidth is the number of characters the display shows before
	// FormatDisplay switches to exponential notation.
	DisplayWidth = 12
	// DisplayDigits is the number of fractional digits in exponential
	// notation.
	DisplayDigits = 6
)

// FormatNumber returns the default decimal representation of v: the fewest
// digits that read back as v, written plainly when 1e-6 <= |v| < 1e21 and in
// exponential notation otherwise. Negative zero is "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e21 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDisplay formats a number for the calculator display. See
// FormatDisplayString.
func FormatDisplay(v float64) string {
	return FormatDisplayString(FormatNumber(v))
}

// FormatDisplayString fits a number's text to the display. Text longer than
// DisplayWidth characters is rewritten in exponential notation with
// DisplayDigits fractional digits, e.g. 1234567890123 becomes "1.234568e+12".
// Text that is not a number is returned unchanged.
func FormatDisplayString(s string) string {
	if utf8.RuneCountInString(s) <= DisplayWidth {
		return s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return trimExponent(strconv.FormatFloat(v, 'e', DisplayDigits, 64))
}

// trimExponent removes zero padding from the exponent of a number formatted
// by strconv, so 3e-07 becomes 3e-7.
func trimExponent(s string) string {
	k := strings.LastIndexAny(s, "eE")
	if k < 0 || k+2 >= len(s) {
		return s
	}
	// s[k+1] is the exponent's sign.
	digits := strings.TrimLeft(s[k+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:k+2] + digits
}

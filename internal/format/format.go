// Package format renders numbers, durations and dates for stats views.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Number rounds v to the nearest integer and adds thousands separators.
func Number(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Percentage renders a ratio as a whole percentage, 0.123 -> "12%".
func Percentage(ratio float64) string {
	return fmt.Sprintf("%d%%", int64(math.Round(ratio*100)))
}

// Duration renders seconds as "45s", "1m 5s" or "1h 1m 5s".
// Lower units are always shown once a higher unit is present.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// KebabToPascal converts "hello-world" or "hello_world" to "HelloWorld".
// Only the first letter of each segment is changed.
func KebabToPascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for _, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

package pipeline

import (
	"strings"
)

// Sanitize collapses whitespace runs to single spaces, trims, and truncates to
// maxLength characters. Whitespace means unicode.IsSpace, so NBSP, vertical
// tabs, and the like collapse the same as ASCII spaces. Never fails; the
// result may be empty.
func Sanitize(text string, maxLength int) string {
	sanitized := strings.Join(strings.Fields(text), " ")
	return Truncate(sanitized, maxLength)
}

// Truncate clips s to at most maxLength characters. Character-count, not
// byte-count: multi-byte runes are never split.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

package core

import "strings"

// DefaultMaxChars is the answer budget applied to sanitized replies.
const DefaultMaxChars = 300

// Ellipsis marks a truncated answer.
const Ellipsis = "..."

// Truncate bounds text to maxChars characters (runes, not bytes).  Longer
// text is cut back to the last space inside the budget so no partial word
// survives, and Ellipsis is appended.  When the budget holds no space at all
// the text is cut hard at maxChars.  A non-positive maxChars means
// DefaultMaxChars.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	head := string(runes[:maxChars])
	if i := strings.LastIndexByte(head, ' '); i >= 0 {
		head = head[:i]
	}
	return head + Ellipsis
}

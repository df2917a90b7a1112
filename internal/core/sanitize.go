package core

import "regexp"

// Whitespace here follows Unicode rather than RE2's ASCII-only \s, so that
// no-break and other exotic spaces are collapsed like ordinary ones.
const spaceClass = `\s\x0b\p{Z}`

var (
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	markupRe     = regexp.MustCompile(`[*_~#>]`)
	shortcodeRe  = regexp.MustCompile(`:[a-zA-Z0-9_+\-]+:`)
	symbolRe     = regexp.MustCompile(`[^\p{L}\p{N}_` + spaceClass + `.,!?-]`)
	spaceRunRe   = regexp.MustCompile(`[` + spaceClass + `]+`)
)

// Sanitize strips markdown, code, emoji shortcodes and symbols from a model
// reply, leaving plain prose on a single line.  Fences are removed before
// the symbol filter; otherwise the backticks would be blanked out and the
// code inside them kept.
func Sanitize(raw string) string {
	s := codeFenceRe.ReplaceAllString(raw, "")
	s = inlineCodeRe.ReplaceAllString(s, "")
	s = markupRe.ReplaceAllString(s, "")
	s = shortcodeRe.ReplaceAllString(s, "")
	s = symbolRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return trimSpace(s)
}

// trimSpace trims the same whitespace class the collapse step uses.  After
// collapsing, at most one space is left on either side.
func trimSpace(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

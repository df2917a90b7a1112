package core

import "strings"

// EnsureDisclaimer returns text with disclaimer present exactly where the
// reader expects it: unchanged if the disclaimer already appears anywhere,
// otherwise appended as a new sentence.  The result may exceed the
// truncation budget; the disclaimer wins over length.
func EnsureDisclaimer(text, disclaimer string) string {
	if strings.Contains(text, disclaimer) {
		return text
	}
	return strings.TrimRight(text, ". ") + ". " + disclaimer
}

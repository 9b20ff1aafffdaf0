// ABOUTME: Small string helpers shared by the README sections
// ABOUTME: Title casing, hyphen stripping and first-sentence extraction
package readme

import (
	"strings"
	"unicode"
)

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "ci-cd" becomes "Ci-Cd" and "k8s" becomes "K8S".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

func dehyphenate(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// firstSentence returns the text before the first period.
func firstSentence(s string) string {
	before, _, _ := strings.Cut(s, ".")
	return before
}

// commandID strips every ".md" from a command name.
func commandID(name string) string {
	return strings.ReplaceAll(name, ".md", "")
}

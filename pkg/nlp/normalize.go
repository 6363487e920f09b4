package nlp

import (
	"strings"
	"unicode"
)

// TitleCase upper-cases every letter that follows a non-letter and lower-cases the rest,
// so "node.js" becomes "Node.Js" and "c++" becomes "C++".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// NormalizeSkill prepares a user-supplied skill for comparison with stored skill labels.
func NormalizeSkill(skill string) string {
	return TitleCase(strings.TrimSpace(skill))
}

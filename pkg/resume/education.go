package resume

import (
	"regexp"
	"strings"
)

// Both patterns run over the whole text; overlapping matches are kept as separate entries.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|associate|diploma|certificate).*?in\s+([^\n\r]+)`),
	regexp.MustCompile(`(?i)(b\.?s\.?|m\.?s\.?|ph\.?d\.?|b\.?a\.?|m\.?a\.?)\s+([^\n\r]+)`),
}

// ExtractEducation returns one entry per pattern match. Year and GPA are never set.
func ExtractEducation(text string) []EducationEntry {
	out := make([]EducationEntry, 0)
	for _, re := range educationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			out = append(out, EducationEntry{
				Degree:      strPtr(m[1]),
				Institution: strPtr(strings.TrimSpace(m[2])),
			})
		}
	}
	return out
}

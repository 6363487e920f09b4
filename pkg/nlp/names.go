package nlp

import (
	"strings"
	"unicode"
)

// NameRecognizer finds person names in text. Implementations must be deterministic.
type NameRecognizer interface {
	// PersonNames returns person entities in order of appearance.
	PersonNames(text string) []string
}

// nameStopWords mark lines that are headings, job titles or organisations rather than people.
var nameStopWords = map[string]struct{}{
	"resume": {}, "curriculum": {}, "vitae": {}, "cv": {}, "profile": {}, "summary": {},
	"objective": {}, "experience": {}, "education": {}, "skills": {}, "contact": {},
	"projects": {}, "references": {}, "certifications": {}, "languages": {},
	"engineer": {}, "developer": {}, "analyst": {}, "manager": {}, "director": {},
	"coordinator": {}, "specialist": {}, "intern": {}, "senior": {}, "junior": {},
	"lead": {}, "principal": {}, "chief": {}, "software": {}, "consultant": {},
	"university": {}, "college": {}, "school": {}, "institute": {}, "academy": {},
	"inc": {}, "llc": {}, "ltd": {}, "corp": {}, "corporation": {}, "company": {},
	"bachelor": {}, "master": {}, "science": {}, "arts": {}, "street": {}, "avenue": {},
	// places and technology headings that look like names when capitalized
	"city": {}, "new": {}, "york": {}, "san": {}, "los": {}, "angeles": {}, "francisco": {},
	"united": {}, "states": {}, "kingdom": {}, "remote": {},
	"cloud": {}, "platform": {}, "machine": {}, "learning": {}, "data": {}, "web": {},
	"services": {}, "google": {}, "amazon": {}, "microsoft": {}, "technologies": {}, "systems": {},
}

// CapitalizedNameRecognizer is the model-free fallback (NAME_RECOGNIZER=heuristic).
// It treats a line made of 2-4 capitalized alphabetic words
// (hyphens and apostrophes allowed) as a person name, skipping lines that contain
// heading, title or organisation words.
type CapitalizedNameRecognizer struct{}

func (CapitalizedNameRecognizer) PersonNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if isPersonName(line) {
			names = append(names, strings.Join(strings.Fields(line), " "))
		}
	}
	return names
}

func isPersonName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if _, stop := nameStopWords[strings.ToLower(strings.Trim(w, ".,"))]; stop {
			return false
		}
		if !isCapitalizedWord(w) {
			return false
		}
	}
	return true
}

func isCapitalizedWord(w string) bool {
	w = strings.TrimSuffix(w, ".")
	runes := []rune(w)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	letters := 0
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == '-' || r == '\'':
		default:
			return false
		}
	}
	return letters > 0
}

// NoNameRecognizer never finds a person; only the first-line fallback applies.
type NoNameRecognizer struct{}

func (NoNameRecognizer) PersonNames(string) []string { return nil }

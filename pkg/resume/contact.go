package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var (
	reEmail    = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	rePhone    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reLinkedIn = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
)

const (
	nameScanLimit     = 1000 // runes handed to the name recognizer
	nameLineMaxTokens = 4
	nameLineMaxLen    = 50
)

// ContactExtractor pulls email, phone, LinkedIn and name out of raw text.
type ContactExtractor struct {
	names nlp.NameRecognizer
}

func NewContactExtractor(names nlp.NameRecognizer) *ContactExtractor {
	if names == nil {
		names = nlp.NoNameRecognizer{}
	}
	return &ContactExtractor{names: names}
}

func (e *ContactExtractor) Extract(text string) ContactInfo {
	var c ContactInfo
	if m := reEmail.FindString(text); m != "" {
		c.Email = strPtr(m)
	}
	if m := rePhone.FindString(text); m != "" {
		c.Phone = strPtr(m)
	}
	if m := reLinkedIn.FindString(text); m != "" {
		c.LinkedIn = strPtr(m)
	}
	c.Name = e.name(text)
	return c
}

func (e *ContactExtractor) name(text string) *string {
	head := text
	if r := []rune(text); len(r) > nameScanLimit {
		head = string(r[:nameScanLimit])
	}
	if persons := e.names.PersonNames(head); len(persons) > 0 {
		return strPtr(persons[0])
	}

	// fallback: a short first line is most likely the candidate's name
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	first, _, _ := strings.Cut(trimmed, "\n")
	first = strings.TrimSpace(first)
	if first != "" && len(strings.Fields(first)) <= nameLineMaxTokens && len([]rune(first)) < nameLineMaxLen {
		return strPtr(first)
	}
	return nil
}

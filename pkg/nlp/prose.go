package nlp

import (
	"log"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// ProseNameRecognizer tags PERSON entities with prose's bundled NER model.
type ProseNameRecognizer struct {
	entities func(text string) ([]prose.Entity, error)
}

func NewProseNameRecognizer() *ProseNameRecognizer {
	return &ProseNameRecognizer{entities: proseEntities}
}

func proseEntities(text string) ([]prose.Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	return doc.Entities(), nil
}

// PersonNames returns PERSON entities in order of appearance without repeats.
// Model failures are logged and reported as "no names".
func (r *ProseNameRecognizer) PersonNames(text string) []string {
	ents, err := r.entities(asSentences(text))
	if err != nil {
		log.Printf("nlp: prose entities: %v", err)
		return nil
	}
	var names []string
	seen := make(map[string]struct{})
	for _, e := range ents {
		if e.Label != "PERSON" {
			continue
		}
		name := strings.Join(strings.Fields(e.Text), " ")
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// asSentences terminates every non-blank line so that the tagger does not chain
// a heading and the next line into one entity.
func asSentences(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		if last := []rune(line)[len([]rune(line))-1]; !unicode.IsPunct(last) {
			b.WriteString(".")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// NameMode selects the NameRecognizer built by NewNameRecognizer.
type NameMode string

const (
	NamesProse     NameMode = "prose"
	NamesHeuristic NameMode = "heuristic"
	NamesOff       NameMode = "off"
)

// NewNameRecognizer maps a configured mode to an implementation; unknown modes use prose.
func NewNameRecognizer(mode NameMode) NameRecognizer {
	switch mode {
	case NamesHeuristic:
		return CapitalizedNameRecognizer{}
	case NamesOff:
		return NoNameRecognizer{}
	default:
		return NewProseNameRecognizer()
	}
}

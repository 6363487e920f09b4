package nlp

import "strings"

// Category groups related skill keywords.
type Category struct {
	Name     string
	Keywords []string
}

// skillTable is iterated in declaration order; keywords are lowercase.
var skillTable = []Category{
	{Name: "programming", Keywords: []string{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "swift"}},
	{Name: "web", Keywords: []string{"html", "css", "react", "vue", "angular", "node.js", "django", "flask", "spring"}},
	{Name: "database", Keywords: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite"}},
	{Name: "cloud", Keywords: []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform"}},
	{Name: "data", Keywords: []string{"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "tableau", "powerbi"}},
	{Name: "tools", Keywords: []string{"git", "jenkins", "jira", "confluence", "slack", "trello", "vscode"}},
}

// SkillCategories returns a copy of the keyword table.
func SkillCategories() []Category {
	out := make([]Category, len(skillTable))
	for i, c := range skillTable {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// MatchMode selects how keywords are located in the text.
type MatchMode string

const (
	// MatchSubstring accepts a keyword anywhere, including inside other words ("go" in "google").
	MatchSubstring MatchMode = "substring"
	// MatchWordBoundary only accepts whole tokens or token sequences.
	MatchWordBoundary MatchMode = "word"
)

// SkillExtractor finds known skills in free text.
type SkillExtractor struct {
	mode MatchMode
}

func NewSkillExtractor(mode MatchMode) *SkillExtractor {
	if mode != MatchWordBoundary {
		mode = MatchSubstring
	}
	return &SkillExtractor{mode: mode}
}

func (e *SkillExtractor) Mode() MatchMode { return e.mode }

// Extract returns title-cased skills in table order without duplicates.
func (e *SkillExtractor) Extract(text string) []string {
	var hay string
	if e.mode == MatchWordBoundary {
		hay = Normalize(text)
	} else {
		hay = strings.ToLower(text)
	}

	found := make([]string, 0)
	seen := make(map[string]struct{})
	for _, cat := range skillTable {
		for _, kw := range cat.Keywords {
			if !e.matches(hay, kw) {
				continue
			}
			label := TitleCase(kw)
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			found = append(found, label)
		}
	}
	return found
}

func (e *SkillExtractor) matches(hay, keyword string) bool {
	if e.mode == MatchWordBoundary {
		return ContainsPhrase(hay, Normalize(keyword))
	}
	return strings.Contains(hay, keyword)
}

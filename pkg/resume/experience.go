package resume

import (
	"regexp"
	"strings"
)

var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(software engineer|developer|analyst|manager|director|coordinator|specialist)`),
	regexp.MustCompile(`(?i)(intern|senior|junior|lead|principal|chief)`),
}

// experienceFold is the accumulator of the line scan: entries closed so far plus
// the entry currently being filled, if any.
type experienceFold struct {
	closed []ExperienceEntry
	open   *ExperienceEntry
}

// step consumes one trimmed, non-blank line.
func (f experienceFold) step(line string) experienceFold {
	if !isJobTitleLine(line) {
		return f
	}
	if f.open != nil {
		f.closed = append(f.closed, *f.open)
	}
	f.open = &ExperienceEntry{Title: strPtr(line)}
	return f
}

func (f experienceFold) finish() []ExperienceEntry {
	if f.open != nil {
		f.closed = append(f.closed, *f.open)
		f.open = nil
	}
	return f.closed
}

func isJobTitleLine(line string) bool {
	for _, re := range jobTitlePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// ExtractExperience opens a new entry for every line that looks like a job title.
// The whole line becomes the title; other lines are ignored.
func ExtractExperience(text string) []ExperienceEntry {
	acc := experienceFold{closed: make([]ExperienceEntry, 0)}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		acc = acc.step(line)
	}
	return acc.finish()
}

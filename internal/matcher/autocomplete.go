package matcher

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Autocomplete returns up to limit corpus questions that fuzzy-match input,
// best first. An empty input returns the first limit questions.
func (m *Matcher) Autocomplete(input string, limit int) []string {
	questions := m.corpus.Questions()
	if limit <= 0 {
		return []string{}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		if len(questions) > limit {
			questions = questions[:limit]
		}
		return questions
	}

	matches := fuzzy.Find(input, questions)
	out := make([]string, 0, limit)
	for _, match := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, match.Str)
	}
	return out
}

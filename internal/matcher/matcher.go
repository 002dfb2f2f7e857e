package matcher

import (
	"strings"

	"uae-chat/internal/suggestions"
)

const (
	// MinScore is the lowest score accepted as a match
	MinScore = 2
	// ExactBonus is added when the normalized query equals the question
	ExactBonus = 10
)

// Options controls how a Matcher prepares its corpus
type Options struct {
	// Dedupe drops entries whose normalized question repeats an earlier one
	Dedupe bool
}

// Match is a scored corpus hit
type Match struct {
	Suggestion suggestions.Suggestion
	Index      int
	Score      int
}

type prepared struct {
	normalized string
	tokens     []string
}

// Matcher scores free text against a fixed corpus
type Matcher struct {
	corpus   suggestions.Corpus
	prepared []prepared
}

// New prepares corpus for matching. The corpus is not modified.
func New(corpus suggestions.Corpus, opts Options) *Matcher {
	entries := corpus.Entries()
	kept := make([]suggestions.Suggestion, 0, len(entries))
	prep := make([]prepared, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, s := range entries {
		norm := Normalize(s.Question)
		if opts.Dedupe {
			if seen[norm] {
				continue
			}
			seen[norm] = true
		}
		kept = append(kept, s)
		prep = append(prep, prepared{normalized: norm, tokens: Tokens(norm)})
	}

	return &Matcher{
		corpus:   suggestions.NewCorpus(kept),
		prepared: prep,
	}
}

// Corpus returns the corpus the matcher scores against
func (m *Matcher) Corpus() suggestions.Corpus {
	return m.corpus
}

// Find returns the best matching suggestion, if any scores at least MinScore.
func (m *Matcher) Find(query string) (suggestions.Suggestion, bool) {
	match, ok := m.Best(query)
	if !ok {
		return suggestions.Suggestion{}, false
	}
	return match.Suggestion, true
}

// Best scans the corpus in order and keeps the first entry reaching the
// highest positive score.
func (m *Matcher) Best(query string) (Match, bool) {
	if len(m.prepared) == 0 {
		return Match{}, false
	}

	normQuery := Normalize(query)
	if normQuery == "" {
		return Match{}, false
	}
	queryTokens := Tokens(normQuery)

	best := Match{Index: -1}
	for i, p := range m.prepared {
		score := overlap(queryTokens, p.tokens)
		if normQuery == p.normalized {
			score += ExactBonus
		}
		if score > 0 && score > best.Score {
			best = Match{Suggestion: m.corpus.At(i), Index: i, Score: score}
		}
	}

	if best.Index < 0 || best.Score < MinScore {
		return Match{}, false
	}
	return best, true
}

// overlap counts query tokens that contain, or are contained in, some
// question token.
func overlap(queryTokens, questionTokens []string) int {
	score := 0
	for _, qt := range queryTokens {
		for _, word := range questionTokens {
			if strings.Contains(word, qt) || strings.Contains(qt, word) {
				score++
				break
			}
		}
	}
	return score
}

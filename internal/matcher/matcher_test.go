package matcher

import (
	"reflect"
	"testing"

	"uae-chat/internal/suggestions"
)

func corpusOf(pairs ...string) suggestions.Corpus {
	var entries []suggestions.Suggestion
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, suggestions.Suggestion{Question: pairs[i], Answer: pairs[i+1]})
	}
	return suggestions.NewCorpus(entries)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tell me about Burj Khalifa?", "tell me about burj khalifa"},
		{"  Where's   the MALL!! ", "wheres the mall"},
		{"Hello, world.", "hello world"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokensDropsShortWords(t *testing.T) {
	got := Tokens("is it hot in the uae today")
	want := []string{"hot", "the", "uae", "today"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestExactMatchReturnsStoredAnswer(t *testing.T) {
	m := New(corpusOf(
		"What is the best time to visit Dubai?", "Winter.",
		"Tell me about Burj Khalifa", "It is 828 metres tall.",
		"Tell me about Burj Al Arab", "A sail-shaped hotel.",
	), Options{})

	got, ok := m.Find("Tell me about Burj Khalifa")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Answer != "It is 828 metres tall." {
		t.Errorf("Answer = %q", got.Answer)
	}
}

func TestExactMatchAfterNormalization(t *testing.T) {
	m := New(corpusOf(
		"Where is the Gold Souk?", "Deira.",
		"Where is the Spice Souk?", "Also Deira.",
	), Options{})

	match, ok := m.Best("where is the spice souk")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Index != 1 {
		t.Errorf("Index = %d, want 1", match.Index)
	}
	if match.Score < ExactBonus {
		t.Errorf("Score = %d, want exact bonus applied", match.Score)
	}
}

func TestMatcherScoring(t *testing.T) {
	m := New(corpusOf(
		"How do I use the Dubai Metro?", "metro",
		"What traditional food should I try?", "food",
		"When is National Day celebrated?", "day",
	), Options{})

	tests := []struct {
		name      string
		query     string
		wantOK    bool
		wantIndex int
	}{
		{"two shared tokens, one entry", "dubai metro tickets", true, 0},
		{"substring containment counts", "traditional foods", true, 1},
		{"one shared token only", "metro", false, -1},
		{"no shared tokens", "camel racing schedule", false, -1},
		{"only short words", "is it ok", false, -1},
		{"empty", "   ", false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := m.Best(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Best(%q) ok = %v, want %v (score %d)", tt.query, ok, tt.wantOK, match.Score)
			}
			if ok && match.Index != tt.wantIndex {
				t.Errorf("Best(%q) index = %d, want %d", tt.query, match.Index, tt.wantIndex)
			}
		})
	}
}

func TestTieBreakFirstEntryWins(t *testing.T) {
	m := New(corpusOf(
		"dubai marina walk", "first",
		"dubai marina yacht", "second",
	), Options{})

	got, ok := m.Find("dubai marina")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Answer != "first" {
		t.Errorf("Answer = %q, want first", got.Answer)
	}
}

func TestEmptyCorpusNeverMatches(t *testing.T) {
	m := New(suggestions.Corpus{}, Options{Dedupe: true})
	if _, ok := m.Find("Tell me about Burj Khalifa"); ok {
		t.Error("empty corpus should never match")
	}
}

func TestDedupeKeepsFirstEntry(t *testing.T) {
	corpus := corpusOf(
		"Where is Dubai Mall?", "first",
		"where is dubai mall", "duplicate",
		"Where is Ferrari World?", "other",
	)

	deduped := New(corpus, Options{Dedupe: true})
	if deduped.Corpus().Len() != 2 {
		t.Fatalf("Len = %d, want 2", deduped.Corpus().Len())
	}
	got, _ := deduped.Find("where is dubai mall")
	if got.Answer != "first" {
		t.Errorf("Answer = %q, want first", got.Answer)
	}

	plain := New(corpus, Options{})
	if plain.Corpus().Len() != 3 {
		t.Errorf("Len without dedupe = %d, want 3", plain.Corpus().Len())
	}
	got, _ = plain.Find("where is dubai mall")
	if got.Answer != "first" {
		t.Errorf("Answer without dedupe = %q, want first", got.Answer)
	}
}

func TestAutocomplete(t *testing.T) {
	m := New(corpusOf(
		"Tell me about Burj Khalifa", "a",
		"How do I use the Dubai Metro?", "b",
		"Tell me about the Louvre Abu Dhabi", "c",
	), Options{})

	got := m.Autocomplete("Burj", 5)
	if len(got) != 1 || got[0] != "Tell me about Burj Khalifa" {
		t.Errorf("Autocomplete(Burj) = %v", got)
	}

	if got := m.Autocomplete("", 2); len(got) != 2 {
		t.Errorf("empty input should return first 2 questions, got %v", got)
	}
	if got := m.Autocomplete("Tell", 0); len(got) != 0 {
		t.Errorf("zero limit should return nothing, got %v", got)
	}
}

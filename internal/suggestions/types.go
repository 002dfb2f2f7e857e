package suggestions

// Suggestion is a single question/answer pair from the corpus
type Suggestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document is the on-disk and over-the-wire shape of a corpus file
type Document struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Corpus is an ordered, read-only list of suggestions.
type Corpus struct {
	entries []Suggestion
}

// NewCorpus copies entries into a new corpus.
func NewCorpus(entries []Suggestion) Corpus {
	c := Corpus{entries: make([]Suggestion, len(entries))}
	copy(c.entries, entries)
	return c
}

// Len returns the number of entries.
func (c Corpus) Len() int {
	return len(c.entries)
}

// At returns the i-th entry.
func (c Corpus) At(i int) Suggestion {
	return c.entries[i]
}

// Entries returns a copy of the entries in corpus order.
func (c Corpus) Entries() []Suggestion {
	out := make([]Suggestion, len(c.entries))
	copy(out, c.entries)
	return out
}

// Questions returns every question in corpus order.
func (c Corpus) Questions() []string {
	out := make([]string, len(c.entries))
	for i, s := range c.entries {
		out[i] = s.Question
	}
	return out
}

package search

import (
	"strings"
	"testing"
)

func TestFormatResultsEmpty(t *testing.T) {
	got := FormatResults(Response{Query: "anything"})
	if got != NoResultsMessage {
		t.Errorf("FormatResults(empty) = %q", got)
	}
}

func TestFormatResults(t *testing.T) {
	resp := Response{
		Query: "Dubai weather",
		Results: []SearchResult{
			{Title: "Weather in Dubai", Link: "https://example.com/a", Snippet: "Current weather information for Dubai", DisplayLink: "example.com"},
			{Title: "NCM forecast", Link: "https://example.com/b", Snippet: "Official forecasts", DisplayLink: "example.com"},
		},
	}

	got := FormatResults(resp)

	if !strings.HasPrefix(got, `🔍 **Web Search Results for "Dubai weather"**`) {
		t.Errorf("missing header: %q", got)
	}

	for _, r := range resp.Results {
		for _, part := range []string{r.Title, r.Snippet, r.Link} {
			if n := strings.Count(got, part); n != 1 {
				t.Errorf("%q appears %d times, want 1", part, n)
			}
		}
	}

	first := strings.Index(got, "**1. Weather in Dubai**")
	second := strings.Index(got, "**2. NCM forecast**")
	if first < 0 || second < 0 || first > second {
		t.Errorf("results not numbered in input order: %q", got)
	}
	if !strings.Contains(got, "🔗 https://example.com/b") {
		t.Errorf("missing link line: %q", got)
	}
}

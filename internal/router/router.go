package router

import (
	"context"
	"log"
	"strings"

	"uae-chat/internal/analyzer"
	"uae-chat/internal/common"
	"uae-chat/internal/matcher"
	"uae-chat/internal/responses"
	"uae-chat/internal/search"
)

// Reply sources
const (
	SourceCorpus = "corpus"
	SourceCanned = "canned"
	SourceSearch = "search"
)

// Searcher runs web searches. Implementations must not fail; they degrade to
// static results instead.
type Searcher interface {
	SearchUAE(ctx context.Context, query string) search.Response
	SearchGeneral(ctx context.Context, query string) search.Response
}

// Reply is the bot's answer to one user message
type Reply struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// Router decides how each message is answered
type Router struct {
	matcher  *matcher.Matcher
	searcher Searcher
	analyzer *analyzer.Analyzer
	logger   *log.Logger
}

// New creates a router over a prepared matcher and a searcher
func New(m *matcher.Matcher, s Searcher, logger *log.Logger) *Router {
	return &Router{
		matcher:  m,
		searcher: s,
		analyzer: analyzer.NewAnalyzer(),
		logger:   common.OrDiscard(logger),
	}
}

// Route answers query. category is optional and comes from quick replies.
//
// Corpus hits win; short messages and greetings get a canned answer without
// touching the network; everything else goes to the web search.
func (r *Router) Route(ctx context.Context, query, category string) Reply {
	query = strings.TrimSpace(query)

	if match, ok := r.matcher.Best(query); ok {
		r.logger.Printf("corpus match %d (score %d) for %q", match.Index, match.Score, query)
		if category == "" {
			category = analyzer.CategoryGeneral
		}
		return Reply{Text: match.Suggestion.Answer, Category: category, Source: SourceCorpus}
	}

	if r.analyzer.IsSmallTalk(query) {
		resolved := r.analyzer.Categorize(query, category)
		return Reply{Text: responses.ForCategory(resolved), Category: resolved, Source: SourceCanned}
	}

	var resp search.Response
	if r.analyzer.IsUAERelated(query) {
		r.logger.Printf("uae search for %q", query)
		resp = r.searcher.SearchUAE(ctx, query)
	} else {
		r.logger.Printf("general search for %q", query)
		resp = r.searcher.SearchGeneral(ctx, query)
	}

	if err := ctx.Err(); err != nil {
		r.logger.Printf("search for %q interrupted: %v", query, err)
		return Reply{
			Text:     responses.SearchUnavailable + responses.General,
			Category: analyzer.CategoryGeneral,
			Source:   SourceCanned,
		}
	}

	return Reply{Text: search.FormatResults(resp), Category: analyzer.CategoryGeneral, Source: SourceSearch}
}

// Autocomplete proxies to the matcher's question suggestions
func (r *Router) Autocomplete(input string, limit int) []string {
	return r.matcher.Autocomplete(input, limit)
}

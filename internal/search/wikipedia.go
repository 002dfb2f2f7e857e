package search

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

var uaeNamePattern = regexp.MustCompile(`(?i)uae|united arab emirates`)

// searchWikipedia looks up a page summary and falls back to the search API
func (c *Client) searchWikipedia(ctx context.Context, query string, uae bool) []SearchResult {
	title := query
	searchQuery := query
	defaultSnippet := "Information from Wikipedia."
	if uae {
		title = strings.TrimSpace(uaeNamePattern.ReplaceAllString(query, "")) + " UAE"
		searchQuery = query + " UAE"
		defaultSnippet = "Information from Wikipedia about UAE topics."
	}

	pageTitle := strings.Join(strings.Fields(title), "_")
	pageURL := c.wikiURL + "/wiki/" + url.PathEscape(pageTitle)
	summaryURL := c.wikiURL + "/api/rest_v1/page/summary/" + url.PathEscape(pageTitle)

	var summary wikiSummary
	if err := c.getJSON(ctx, summaryURL, &summary); err != nil {
		c.logger.Printf("wikipedia summary for %q failed: %v, trying search", pageTitle, err)
		return c.searchWikipediaAPI(ctx, searchQuery)
	}
	if summary.Type == "disambiguation" {
		c.logger.Printf("wikipedia summary for %q is a disambiguation page, trying search", pageTitle)
		return c.searchWikipediaAPI(ctx, searchQuery)
	}

	result := SearchResult{
		Title:       summary.Title,
		Link:        summary.ContentURLs.Desktop.Page,
		Snippet:     summary.Extract,
		DisplayLink: hostOf(c.wikiURL),
	}
	if result.Title == "" {
		result.Title = "Wikipedia Article"
	}
	if result.Link == "" {
		result.Link = pageURL
	}
	if result.Snippet == "" {
		result.Snippet = defaultSnippet
	}
	return []SearchResult{result}
}

// searchWikipediaAPI uses the full-text search endpoint and keeps the top three hits
func (c *Client) searchWikipediaAPI(ctx context.Context, query string) []SearchResult {
	params := url.Values{}
	params.Add("action", "query")
	params.Add("list", "search")
	params.Add("srsearch", query)
	params.Add("format", "json")

	var resp wikiSearch
	if err := c.getJSON(ctx, c.wikiURL+"/w/api.php?"+params.Encode(), &resp); err != nil {
		c.logger.Printf("wikipedia search for %q failed: %v", query, err)
		return nil
	}

	hits := resp.Query.Search
	if len(hits) > 3 {
		hits = hits[:3]
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			Title:       hit.Title,
			Link:        c.wikiURL + "/wiki/" + url.PathEscape(strings.Join(strings.Fields(hit.Title), "_")),
			Snippet:     StripTags(hit.Snippet) + "...",
			DisplayLink: hostOf(c.wikiURL),
		})
	}
	return results
}

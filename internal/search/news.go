package search

import (
	"context"
	"net/url"
)

// searchNews queries NewsAPI and falls back to curated news search links
func (c *Client) searchNews(ctx context.Context, query string, uae bool) []SearchResult {
	alternatives := generalNewsResults
	newsQuery := query
	defaultSnippet := "Latest news about this topic."
	if uae {
		alternatives = uaeNewsResults
		newsQuery = query + " UAE"
		defaultSnippet = "Latest news about UAE topics."
	}

	if c.newsKey == "" {
		return alternatives(query)
	}

	params := url.Values{}
	params.Add("q", newsQuery)
	params.Add("language", "en")
	params.Add("sortBy", "publishedAt")
	params.Add("pageSize", "3")
	params.Add("apiKey", c.newsKey)

	var resp newsResponse
	if err := c.getJSON(ctx, c.newsURL+"/v2/everything?"+params.Encode(), &resp); err != nil {
		c.logger.Printf("news search for %q failed: %v, using alternatives", newsQuery, err)
		return alternatives(query)
	}

	articles := resp.Articles
	if len(articles) > 2 {
		articles = articles[:2]
	}

	results := make([]SearchResult, 0, len(articles))
	for _, article := range articles {
		host := hostOf(article.URL)
		if host == "" {
			continue
		}
		snippet := article.Description
		if snippet == "" {
			snippet = defaultSnippet
		}
		results = append(results, SearchResult{
			Title:       article.Title,
			Link:        article.URL,
			Snippet:     snippet,
			DisplayLink: host,
		})
	}
	return results
}

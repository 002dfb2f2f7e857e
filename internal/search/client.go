package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"uae-chat/internal/analyzer"
	"uae-chat/internal/common"
)

// Options configures a Client
type Options struct {
	WikipediaURL  string
	NewsAPIURL    string
	NewsAPIKey    string
	WeatherAPIURL string
	WeatherAPIKey string
	Timeout       time.Duration
	MaxResults    int
	UserAgent     string
	Logger        *log.Logger
}

// Client fans a query out to Wikipedia, a news API and a weather API. Every
// source degrades to a fallback instead of failing.
type Client struct {
	wikiURL    string
	newsURL    string
	newsKey    string
	weatherURL string
	weatherKey string
	maxResults int
	userAgent  string
	httpClient *http.Client
	analyzer   *analyzer.Analyzer
	logger     *log.Logger
	now        func() time.Time
}

// NewClient creates a new search client
func NewClient(opts Options) *Client {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 8
	}
	return &Client{
		wikiURL:    strings.TrimRight(opts.WikipediaURL, "/"),
		newsURL:    strings.TrimRight(opts.NewsAPIURL, "/"),
		newsKey:    opts.NewsAPIKey,
		weatherURL: strings.TrimRight(opts.WeatherAPIURL, "/"),
		weatherKey: opts.WeatherAPIKey,
		maxResults: maxResults,
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		analyzer: analyzer.NewAnalyzer(),
		logger:   common.OrDiscard(opts.Logger),
		now:      time.Now,
	}
}

// SearchUAE searches with UAE context: the query is enhanced, weather
// questions also hit the weather API, and the UAE static list backs it all.
func (c *Client) SearchUAE(ctx context.Context, query string) Response {
	enhanced := c.analyzer.EnhanceUAEQuery(query)

	var sources []source
	if c.analyzer.IsWeatherQuery(query) {
		sources = append(sources, source{"weather", func(ctx context.Context) []SearchResult {
			return c.searchWeather(ctx, enhanced)
		}})
	}
	sources = append(sources,
		source{"wikipedia", func(ctx context.Context) []SearchResult {
			return c.searchWikipedia(ctx, enhanced, true)
		}},
		source{"news", func(ctx context.Context) []SearchResult {
			return c.searchNews(ctx, enhanced, true)
		}},
	)

	return c.collect(ctx, enhanced, sources, uaeMockResults)
}

// SearchGeneral searches without UAE context
func (c *Client) SearchGeneral(ctx context.Context, query string) Response {
	sources := []source{
		{"wikipedia", func(ctx context.Context) []SearchResult {
			return c.searchWikipedia(ctx, query, false)
		}},
		{"news", func(ctx context.Context) []SearchResult {
			return c.searchNews(ctx, query, false)
		}},
	}

	return c.collect(ctx, query, sources, generalMockResults)
}

// collect runs sources in parallel, merges them in source order, caps the
// list and falls back to the static results when nothing came back.
func (c *Client) collect(ctx context.Context, query string, sources []source, fallback func() []SearchResult) Response {
	var all []SearchResult
	for _, results := range gather(ctx, sources, c.logger) {
		all = append(all, results...)
	}

	if len(all) == 0 {
		c.logger.Printf("all search sources empty for %q, using static results", query)
		all = fallback()
	}

	resp := Response{
		Query:        query,
		Results:      all,
		SearchTime:   c.now(),
		TotalResults: len(all),
	}
	if len(resp.Results) > c.maxResults {
		resp.Results = resp.Results[:c.maxResults]
	}
	return resp
}

// getJSON performs a GET and decodes a 2xx JSON body into out
func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// StatusError reports a non-2xx upstream response
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

package search

import "time"

// SearchResult represents a single search result
type SearchResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// Response is the merged outcome of one search call
type Response struct {
	Query        string         `json:"query"`
	Results      []SearchResult `json:"results"`
	SearchTime   time.Time      `json:"searchTime"`
	TotalResults int            `json:"totalResults"`
}

// wikiSummary is the REST page summary payload
type wikiSummary struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// wikiSearch is the action=query&list=search payload
type wikiSearch struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

// newsResponse is the NewsAPI /v2/everything payload
type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
	} `json:"articles"`
}

// weatherResponse is the OpenWeatherMap current weather payload
type weatherResponse struct {
	ID   int `json:"id"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

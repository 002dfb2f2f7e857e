package search

import "net/url"

// uaeNewsResults points at UAE newspaper searches for query
func uaeNewsResults(query string) []SearchResult {
	q := url.QueryEscape(query)
	return []SearchResult{
		{
			Title:       "Gulf News - Latest UAE News",
			Link:        "https://gulfnews.com/search?q=" + q,
			Snippet:     "Comprehensive coverage of UAE news, business, sports, and lifestyle from Gulf News.",
			DisplayLink: "gulfnews.com",
		},
		{
			Title:       "Khaleej Times - UAE News",
			Link:        "https://www.khaleejtimes.com/search/" + url.PathEscape(query),
			Snippet:     "Breaking news and updates from the UAE and Middle East region.",
			DisplayLink: "khaleejtimes.com",
		},
		{
			Title:       "The National - UAE News",
			Link:        "https://www.thenationalnews.com/search?q=" + q,
			Snippet:     "In-depth reporting on UAE news, politics, business, and culture.",
			DisplayLink: "thenationalnews.com",
		},
	}
}

// generalNewsResults points at general news searches for query
func generalNewsResults(query string) []SearchResult {
	q := url.QueryEscape(query)
	return []SearchResult{
		{
			Title:       `Search results for "` + query + `"`,
			Link:        "https://www.google.com/search?q=" + q,
			Snippet:     "Find comprehensive information and latest updates on this topic from trusted sources worldwide.",
			DisplayLink: "google.com",
		},
		{
			Title:       "BBC News - Latest Updates",
			Link:        "https://www.bbc.co.uk/search?q=" + q,
			Snippet:     "Breaking news and in-depth coverage from BBC News.",
			DisplayLink: "bbc.co.uk",
		},
		{
			Title:       "Reuters - Global News",
			Link:        "https://www.reuters.com/search/?query=" + q,
			Snippet:     "Fact-based journalism and global news coverage.",
			DisplayLink: "reuters.com",
		},
	}
}

func uaeMockResults() []SearchResult {
	return []SearchResult{
		{
			Title:       "UAE Information - Official Government Portal",
			Link:        "https://u.ae",
			Snippet:     "Official information about UAE services, tourism, and government services. Find the latest updates on UAE attractions, events, and essential services.",
			DisplayLink: "u.ae",
		},
		{
			Title:       "Dubai Tourism - Visit Dubai Official Website",
			Link:        "https://www.visitdubai.com",
			Snippet:     "Discover Dubai's top attractions, events, and experiences. Plan your perfect trip to the UAE with official tourism information.",
			DisplayLink: "visitdubai.com",
		},
		{
			Title:       "UAE Government Services - Smart Dubai",
			Link:        "https://www.digitaldubai.ae",
			Snippet:     "Access UAE government services online. Find information about transportation, healthcare, education, and business in the UAE.",
			DisplayLink: "digitaldubai.ae",
		},
	}
}

func generalMockResults() []SearchResult {
	return []SearchResult{
		{
			Title:       "Search Results",
			Link:        "https://www.google.com",
			Snippet:     "Find comprehensive information about your query from trusted sources worldwide.",
			DisplayLink: "google.com",
		},
		{
			Title:       "Wikipedia - Free Encyclopedia",
			Link:        "https://en.wikipedia.org",
			Snippet:     "Access free knowledge and detailed information about various topics.",
			DisplayLink: "wikipedia.org",
		},
		{
			Title:       "BBC News - Latest Updates",
			Link:        "https://www.bbc.co.uk/news",
			Snippet:     "Stay informed with breaking news and in-depth coverage from around the world.",
			DisplayLink: "bbc.co.uk",
		},
	}
}

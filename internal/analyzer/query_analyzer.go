package analyzer

import (
	"regexp"
	"strings"
)

// Categories used for canned answers and message tagging
const (
	CategoryTourist   = "tourist"
	CategoryTransport = "transport"
	CategoryEvents    = "events"
	CategoryEmergency = "emergency"
	CategoryWeather   = "weather"
	CategoryGeneral   = "general"
)

var greetingPattern = regexp.MustCompile(`(?i)^(hi|hello|hey|howdy|greetings?|good\s+(morning|afternoon|evening)|thanks?|thank\s+you|bye|goodbye|see\s+you)\b`)

// enhancementRule rewrites a query that pairs a topic word with an emirate
type enhancementRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Analyzer classifies user queries
type Analyzer struct {
	explicitUAE   []string
	locations     []string
	landmarks     []string
	companies     []string
	culture       []string
	weather       []string
	contextWords  []string
	enhancements  []enhancementRule
	categoryTerms map[string][]string
	categoryOrder []string
}

// NewAnalyzer creates a new query analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		explicitUAE: []string{
			"uae", "united arab emirates", "emirates", "emirati",
		},
		locations: []string{
			"dubai", "abu dhabi", "sharjah", "ajman", "fujairah",
			"ras al khaimah", "umm al quwain",
		},
		landmarks: []string{
			"burj khalifa", "burj al arab", "palm jumeirah", "palm jebel ali",
			"dubai mall", "dubai fountain", "dubai frame", "dubai creek",
			"sheikh zayed grand mosque", "louvre abu dhabi", "yas island",
			"ferrari world", "atlantis the palm", "seven stars", "gold souk",
			"spice souk", "deira", "jumeirah", "marina", "festival city",
			"mall of emirates", "atlantis", "desert safari", "dune bashing",
			"falcon hospital", "dubai healthcare city",
		},
		companies: []string{
			"emirates airline", "etihad", "flydubai", "dubai metro", "nol card",
			"mohammed bin rashid", "sheikh mohammed", "uae president",
			"abu dhabi crown prince", "dubai ruler",
		},
		culture: []string{
			"uae culture", "uae national day", "uae flag", "ramadan uae", "eid uae",
		},
		weather: []string{
			"weather", "temperature", "forecast", "rain", "sunny", "cloudy",
			"hot", "cold", "climate",
		},
		contextWords: []string{
			"emirates", "gulf", "arabian", "burj", "palm", "desert safari",
		},
		enhancements: []enhancementRule{
			{regexp.MustCompile(`(?i)\b(weather|temperature|forecast)\b.*\b(dubai|abu dhabi|sharjah|ajman|fujairah|ras al khaimah|umm al quwain)\b`), "$1 in $2 UAE"},
			{regexp.MustCompile(`(?i)\b(metro|bus|taxi|transport)\b.*\b(dubai|abu dhabi|sharjah)\b`), "$1 in $2 UAE"},
			{regexp.MustCompile(`(?i)\b(mall|restaurant|hotel|beach)\b.*\b(dubai|abu dhabi|sharjah)\b`), "$1 in $2 UAE"},
		},
		categoryTerms: map[string][]string{
			CategoryTourist:   {"tourist", "attraction", "dubai"},
			CategoryTransport: {"transport", "metro", "bus"},
			CategoryEvents:    {"event", "culture", "food"},
			CategoryEmergency: {"emergency", "help", "police"},
			CategoryWeather:   {"weather"},
		},
		categoryOrder: []string{
			CategoryTourist, CategoryTransport, CategoryEvents, CategoryEmergency, CategoryWeather,
		},
	}
}

// IsShortQuery reports whether query has fewer than two words
func (a *Analyzer) IsShortQuery(query string) bool {
	return len(strings.Fields(query)) < 2
}

// IsGreeting reports whether query opens with a greeting, thanks or farewell
func (a *Analyzer) IsGreeting(query string) bool {
	return greetingPattern.MatchString(strings.TrimSpace(query))
}

// IsSmallTalk reports whether query should skip the web search entirely
func (a *Analyzer) IsSmallTalk(query string) bool {
	return a.IsShortQuery(query) || a.IsGreeting(query)
}

// IsUAERelated reports whether query has strong UAE context. Single-word
// queries never qualify.
func (a *Analyzer) IsUAERelated(query string) bool {
	lower := strings.ToLower(strings.TrimSpace(query))
	if len(strings.Fields(lower)) < 2 {
		return false
	}

	for _, group := range [][]string{a.explicitUAE, a.locations, a.landmarks, a.companies, a.culture} {
		if a.countMatches(lower, group) > 0 {
			return true
		}
	}
	return false
}

// IsWeatherQuery reports whether query asks about weather
func (a *Analyzer) IsWeatherQuery(query string) bool {
	return a.countMatches(strings.ToLower(query), a.weather) > 0
}

// WeatherCity returns the first emirate named in query, or dubai
func (a *Analyzer) WeatherCity(query string) string {
	lower := strings.ToLower(query)
	for _, city := range a.locations {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return "dubai"
}

// EnhanceUAEQuery adds UAE context to queries that hint at it without naming it
func (a *Analyzer) EnhanceUAEQuery(query string) string {
	if a.IsUAERelated(query) {
		return query
	}

	for _, rule := range a.enhancements {
		if rule.pattern.MatchString(query) {
			return rule.pattern.ReplaceAllString(query, rule.replacement)
		}
	}

	if a.countMatches(strings.ToLower(query), a.contextWords) > 0 {
		return query + " UAE"
	}
	return query
}

// Categorize picks the canned-answer category. An explicit category wins;
// otherwise the first keyword group found in query decides.
func (a *Analyzer) Categorize(query, category string) string {
	if _, ok := a.categoryTerms[category]; ok {
		return category
	}
	lower := strings.ToLower(query)
	for _, name := range a.categoryOrder {
		if a.countMatches(lower, a.categoryTerms[name]) > 0 {
			return name
		}
	}
	return CategoryGeneral
}

// countMatches counts how many patterns match in the query
func (a *Analyzer) countMatches(query string, patterns []string) int {
	count := 0
	for _, pattern := range patterns {
		if strings.Contains(query, pattern) {
			count++
		}
	}
	return count
}

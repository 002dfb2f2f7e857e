package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"uae-chat/internal/responses"
)

const historyDir = "~/.uae-chat"

// Config holds all application configuration
type Config struct {
	// Corpus settings
	SuggestionsSource string `toml:"suggestions_source"`
	DedupeCorpus      bool   `toml:"dedupe_corpus"`

	// Search settings
	WikipediaURL  string        `toml:"wikipedia_url"`
	NewsAPIURL    string        `toml:"news_api_url"`
	NewsAPIKey    string        `toml:"news_api_key"`
	WeatherAPIURL string        `toml:"weather_api_url"`
	WeatherAPIKey string        `toml:"weather_api_key"`
	SearchTimeout time.Duration `toml:"search_timeout"`
	MaxResults    int           `toml:"max_results"`
	UserAgent     string        `toml:"user_agent"`

	// History settings
	HistoryBackend string `toml:"history_backend"`
	HistoryPath    string `toml:"history_path"`
	MaxHistorySize int    `toml:"max_history_size"`

	// Server settings
	ListenAddr  string        `toml:"listen_addr"`
	SessionIdle time.Duration `toml:"session_idle"`

	// Feature flags
	Language string `toml:"language"`
	Serve    bool   `toml:"serve"`
	Verbose  bool   `toml:"verbose"`
}

// History backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		// Corpus defaults (empty source = embedded corpus)
		SuggestionsSource: "",
		DedupeCorpus:      true,

		// Search defaults
		WikipediaURL:  "https://en.wikipedia.org",
		NewsAPIURL:    "https://newsapi.org",
		WeatherAPIURL: "https://api.openweathermap.org",
		SearchTimeout: 10 * time.Second,
		MaxResults:    8,
		UserAgent:     "uae-chat/1.0",

		// History defaults
		HistoryBackend: BackendJSON,
		HistoryPath:    "", // derived from the backend, see HistoryFile
		MaxHistorySize: 20,

		// Server defaults
		ListenAddr:  ":8080",
		SessionIdle: 30 * time.Minute,

		// Feature flags
		Language: "en",
		Serve:    false,
		Verbose:  false,
	}
}

// LoadFile overlays values from a TOML file. Keys absent from the file keep
// their current value. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	path = expandHome(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.HistoryPath = expandHome(c.HistoryPath)
	return nil
}

// LoadDotEnv loads a .env file into the process environment if one exists.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides reads UAECHAT_* variables through GetEnv.
func (c *Config) ApplyEnvOverrides() {
	if v := GetEnv("UAECHAT_SUGGESTIONS"); v != "" {
		c.SuggestionsSource = v
	}
	if v := GetEnv("UAECHAT_NEWS_API_KEY"); v != "" {
		c.NewsAPIKey = v
	}
	if v := GetEnv("UAECHAT_WEATHER_API_KEY"); v != "" {
		c.WeatherAPIKey = v
	}
	if v := GetEnv("UAECHAT_HISTORY_BACKEND"); v != "" {
		c.HistoryBackend = v
	}
	if v := GetEnv("UAECHAT_HISTORY_PATH"); v != "" {
		c.HistoryPath = expandHome(v)
	}
	if v := GetEnv("UAECHAT_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := GetEnv("UAECHAT_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := GetEnv("UAECHAT_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxResults = n
		}
	}
	if v := GetEnv("UAECHAT_VERBOSE"); v == "true" || v == "1" {
		c.Verbose = true
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.WikipediaURL == "" {
		return fmt.Errorf("wikipedia URL cannot be empty")
	}
	if c.MaxResults < 1 || c.MaxResults > 20 {
		return fmt.Errorf("max results must be between 1 and 20")
	}
	if c.SearchTimeout <= 0 {
		return fmt.Errorf("search timeout must be positive")
	}
	switch strings.ToLower(c.HistoryBackend) {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown history backend %q", c.HistoryBackend)
	}
	if c.MaxHistorySize < 1 {
		return fmt.Errorf("max history size must be at least 1")
	}
	if !responses.IsSupportedLanguage(c.Language) {
		return fmt.Errorf("unsupported language %q (use en, ar or pa)", c.Language)
	}
	if c.SessionIdle <= 0 {
		return fmt.Errorf("session idle timeout must be positive")
	}
	return nil
}

// HistoryFile returns the transcript store path. Without an explicit path the
// file lives in ~/.uae-chat and is named after the backend.
func (c *Config) HistoryFile() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	name := "history.json"
	if strings.ToLower(c.HistoryBackend) == BackendSQLite {
		name = "history.db"
	}
	return expandHome(historyDir + "/" + name)
}

// expandHome expands the ~ in file paths to the user's home directory
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir := getHomeDir()
		return homeDir + path[1:]
	}
	return path
}

// getHomeDir returns the user's home directory
func getHomeDir() string {
	if home := GetEnv("HOME"); home != "" {
		return home
	}
	// Fallback for Windows
	if home := GetEnv("USERPROFILE"); home != "" {
		return home
	}
	return "."
}

// GetEnv is a wrapper around os.Getenv for easier testing
var GetEnv = func(key string) string {
	// Will be replaced with os.Getenv in main
	return ""
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := GetEnv
	GetEnv = func(key string) string { return env[key] }
	t.Cleanup(func() { GetEnv = prev })
}

func TestNewConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.MaxResults != 8 {
		t.Errorf("MaxResults = %d, want 8", cfg.MaxResults)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sqlite backend", func(c *Config) { c.HistoryBackend = BackendSQLite }, false},
		{"unknown backend", func(c *Config) { c.HistoryBackend = "redis" }, true},
		{"zero results", func(c *Config) { c.MaxResults = 0 }, true},
		{"too many results", func(c *Config) { c.MaxResults = 21 }, true},
		{"no timeout", func(c *Config) { c.SearchTimeout = 0 }, true},
		{"empty wikipedia", func(c *Config) { c.WikipediaURL = "" }, true},
		{"empty history", func(c *Config) { c.MaxHistorySize = 0 }, true},
		{"arabic", func(c *Config) { c.Language = "ar" }, false},
		{"unsupported language", func(c *Config) { c.Language = "fr" }, true},
		{"empty language", func(c *Config) { c.Language = "" }, true},
		{"zero session idle", func(c *Config) { c.SessionIdle = 0 }, true},
		{"negative session idle", func(c *Config) { c.SessionIdle = -time.Minute }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHistoryFile(t *testing.T) {
	withEnv(t, map[string]string{"HOME": "/home/tester"})

	tests := []struct {
		name    string
		backend string
		path    string
		want    string
	}{
		{"json default", BackendJSON, "", "/home/tester/.uae-chat/history.json"},
		{"sqlite default", BackendSQLite, "", "/home/tester/.uae-chat/history.db"},
		{"sqlite mixed case", "SQLite", "", "/home/tester/.uae-chat/history.db"},
		{"explicit path wins", BackendSQLite, "/data/chat.sqlite", "/data/chat.sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.HistoryBackend = tt.backend
			cfg.HistoryPath = tt.path
			if got := cfg.HistoryFile(); got != tt.want {
				t.Errorf("HistoryFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	withEnv(t, map[string]string{"HOME": "/home/tester"})

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
suggestions_source = "https://example.com/qa.json"
max_results = 5
search_timeout = "3s"
history_backend = "sqlite"
history_path = "~/chat.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SuggestionsSource != "https://example.com/qa.json" {
		t.Errorf("SuggestionsSource = %q", cfg.SuggestionsSource)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.MaxResults)
	}
	if cfg.SearchTimeout != 3*time.Second {
		t.Errorf("SearchTimeout = %v, want 3s", cfg.SearchTimeout)
	}
	if cfg.HistoryPath != "/home/tester/chat.db" {
		t.Errorf("HistoryPath = %q", cfg.HistoryPath)
	}
	// untouched keys keep defaults
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want default", cfg.ListenAddr)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("max_results = ["), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewConfig().LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	withEnv(t, map[string]string{
		"UAECHAT_NEWS_API_KEY":    "news-key",
		"UAECHAT_WEATHER_API_KEY": "weather-key",
		"UAECHAT_MAX_RESULTS":     "4",
		"UAECHAT_LANGUAGE":        "ar",
		"UAECHAT_VERBOSE":         "1",
	})

	cfg := NewConfig()
	cfg.ApplyEnvOverrides()

	if cfg.NewsAPIKey != "news-key" || cfg.WeatherAPIKey != "weather-key" {
		t.Errorf("api keys not applied: %q %q", cfg.NewsAPIKey, cfg.WeatherAPIKey)
	}
	if cfg.MaxResults != 4 {
		t.Errorf("MaxResults = %d, want 4", cfg.MaxResults)
	}
	if cfg.Language != "ar" {
		t.Errorf("Language = %q, want ar", cfg.Language)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be set")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("UAECHAT_TEST_DOTENV=loaded\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("UAECHAT_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("UAECHAT_TEST_DOTENV"); got != "loaded" {
		t.Errorf("env = %q, want loaded", got)
	}
}

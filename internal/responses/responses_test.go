package responses

import (
	"strings"
	"testing"

	"uae-chat/internal/analyzer"
)

func TestForCategory(t *testing.T) {
	tests := []struct {
		category string
		contains string
	}{
		{analyzer.CategoryTourist, "Tourist Attractions"},
		{analyzer.CategoryTransport, "Transportation Guide"},
		{analyzer.CategoryEvents, "Cultural Events"},
		{analyzer.CategoryEmergency, "999"},
		{analyzer.CategoryWeather, "Weather Guide"},
		{analyzer.CategoryGeneral, "be more specific"},
		{"nonsense", "be more specific"},
	}
	for _, tt := range tests {
		if got := ForCategory(tt.category); !strings.Contains(got, tt.contains) {
			t.Errorf("ForCategory(%q) missing %q", tt.category, tt.contains)
		}
	}
}

func TestWelcome(t *testing.T) {
	if Welcome("ar") == Welcome("en") {
		t.Error("arabic welcome should differ from english")
	}
	if Welcome("xx") != Welcome(LanguageEnglish) {
		t.Error("unknown language should fall back to english")
	}
	if !IsSupportedLanguage("pa") || IsSupportedLanguage("fr") {
		t.Error("IsSupportedLanguage mismatch")
	}
	if LanguageName("ar") != "العربية" {
		t.Errorf("LanguageName(ar) = %q", LanguageName("ar"))
	}
}

func TestQuickRepliesCopy(t *testing.T) {
	replies := QuickReplies()
	if len(replies) != 6 {
		t.Fatalf("got %d quick replies, want 6", len(replies))
	}
	replies[0].Query = "changed"
	if QuickReplies()[0].Query == "changed" {
		t.Error("QuickReplies should return a copy")
	}
}

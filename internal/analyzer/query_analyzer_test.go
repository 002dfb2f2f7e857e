package analyzer

import "testing"

func TestIsUAERelated(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		query string
		want  bool
	}{
		{"What is the weather in Dubai?", true},
		{"Tell me about Burj Khalifa", true},
		{"How to use Dubai Metro?", true},
		{"UAE culture and traditions", true},
		{"Emirates airline flights", true},
		{"Desert safari in Dubai", true},
		{"What is the weather in London?", false},
		{"Tell me about Islamic art", false},
		{"How to use New York subway?", false},
		{"What is a falcon?", false},
		{"I want to see camels", false},
		{"What is halal food?", false},
		{"Tell me about desert animals", false},
		{"What is a mosque?", false},
		{"hi", false},
		{"thanks", false},
		{"weather", false},
		{"dubai", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := a.IsUAERelated(tt.query); got != tt.want {
				t.Errorf("IsUAERelated(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsWeatherQuery(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		query string
		want  bool
	}{
		{"What is the weather in Dubai?", true},
		{"Temperature in Abu Dhabi", true},
		{"Is it raining in UAE?", true},
		{"How hot is Dubai today?", true},
		{"What are the best restaurants in Dubai?", false},
		{"Tell me about Burj Khalifa", false},
	}
	for _, tt := range tests {
		if got := a.IsWeatherQuery(tt.query); got != tt.want {
			t.Errorf("IsWeatherQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestIsSmallTalk(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		query string
		want  bool
	}{
		{"hi", true},
		{"Hello there", true},
		{"good   morning everyone", true},
		{"Thank you so much", true},
		{"see you later", true},
		{"Burj", true},
		{"history of Dubai", false},
		{"highway speed limits in Abu Dhabi", false},
		{"Tell me about Burj Khalifa", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := a.IsSmallTalk(tt.query); got != tt.want {
				t.Errorf("IsSmallTalk(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestWeatherCity(t *testing.T) {
	a := NewAnalyzer()
	if got := a.WeatherCity("forecast for Ras Al Khaimah tomorrow"); got != "ras al khaimah" {
		t.Errorf("WeatherCity = %q", got)
	}
	if got := a.WeatherCity("is it hot outside"); got != "dubai" {
		t.Errorf("WeatherCity default = %q, want dubai", got)
	}
}

func TestEnhanceUAEQuery(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		query string
		want  string
	}{
		{"Dubai weather", "Dubai weather"},
		{"Tell me about Burj Khalifa", "Tell me about Burj Khalifa"},
		{"arabian horses", "arabian horses UAE"},
		{"gulf cuisine", "gulf cuisine UAE"},
		{"best pizza recipes", "best pizza recipes"},
	}
	for _, tt := range tests {
		if got := a.EnhanceUAEQuery(tt.query); got != tt.want {
			t.Errorf("EnhanceUAEQuery(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		query, category, want string
	}{
		{"hi", "", CategoryGeneral},
		{"metro", "", CategoryTransport},
		{"tourist", "", CategoryTourist},
		{"police", "", CategoryEmergency},
		{"weather", "", CategoryWeather},
		{"food", "", CategoryEvents},
		{"dubai", "transport", CategoryTransport},
		{"thanks", "emergency", CategoryEmergency},
		{"thanks", "unknown", CategoryGeneral},
	}
	for _, tt := range tests {
		if got := a.Categorize(tt.query, tt.category); got != tt.want {
			t.Errorf("Categorize(%q, %q) = %q, want %q", tt.query, tt.category, got, tt.want)
		}
	}
}

package search

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes each word. Casers are stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// searchWeather reads current conditions for the emirate named in query
func (c *Client) searchWeather(ctx context.Context, query string) []SearchResult {
	city := c.analyzer.WeatherCity(query)

	if c.weatherKey == "" {
		return weatherAlternatives(city)
	}

	params := url.Values{}
	params.Add("q", city+",ae")
	params.Add("appid", c.weatherKey)
	params.Add("units", "metric")

	var resp weatherResponse
	if err := c.getJSON(ctx, c.weatherURL+"/data/2.5/weather?"+params.Encode(), &resp); err != nil {
		c.logger.Printf("weather lookup for %s failed: %v, using alternatives", city, err)
		return weatherAlternatives(city)
	}

	description := "conditions unavailable"
	if len(resp.Weather) > 0 {
		description = resp.Weather[0].Description
	}

	return []SearchResult{{
		Title: fmt.Sprintf("Current Weather in %s, UAE", titleCase(city)),
		Link:  fmt.Sprintf("https://openweathermap.org/city/%d", resp.ID),
		Snippet: fmt.Sprintf("Temperature: %d°C, %s. Humidity: %d%%, Wind: %g m/s.",
			int(math.Round(resp.Main.Temp)), description, resp.Main.Humidity, resp.Wind.Speed),
		DisplayLink: "openweathermap.org",
	}}
}

// weatherAlternatives links to forecast sites when the weather API is unavailable
func weatherAlternatives(city string) []SearchResult {
	return []SearchResult{
		{
			Title:       fmt.Sprintf("Weather in %s - UAE", titleCase(city)),
			Link:        fmt.Sprintf("https://www.accuweather.com/en/ae/%s/weather-forecast", strings.ReplaceAll(city, " ", "-")),
			Snippet:     "Check current weather conditions, hourly forecast, and 10-day outlook for UAE cities.",
			DisplayLink: "accuweather.com",
		},
		{
			Title:       "UAE Weather Forecast - National Center of Meteorology",
			Link:        "https://www.ncm.ae/en/weather-forecast.html",
			Snippet:     "Official UAE weather forecasts from the National Center of Meteorology and Seismology.",
			DisplayLink: "ncm.ae",
		},
	}
}

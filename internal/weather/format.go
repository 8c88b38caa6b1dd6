package weather

import (
	"fmt"
	"strings"
	"unicode"
)

// Fixed fallback messages used by the formatters.
const (
	NoForecastMessage    = "No forecast available."
	DataUnavailableLabel = "data unavailable"
)

// FormatCurrent renders a current-conditions record as a fixed, readable
// block: location, condition, temperature, humidity, wind, update time.
// Pure and deterministic, no side effects.
func FormatCurrent(r Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s:\n", r.Location)

	if !r.Available {
		fmt.Fprintf(&b, "  %s\n", DataUnavailableLabel)
		return b.String()
	}

	fmt.Fprintf(&b, "  Condition: %s\n", titleCase(r.Condition))
	fmt.Fprintf(&b, "  Temperature: %.1f°C\n", r.Temperature)
	fmt.Fprintf(&b, "  Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "  Wind: %.1f m/s\n", r.WindSpeed)
	if !r.Timestamp.IsZero() {
		fmt.Fprintf(&b, "  Updated: %s\n", r.Timestamp.UTC().Format("2006-01-02 15:04"))
	}
	return b.String()
}

// FormatForecast renders one block per day in chronological order.
// An empty forecast yields NoForecastMessage instead of failing, which
// also covers the partial-data case: whatever days exist are rendered.
func FormatForecast(f Forecast) string {
	if len(f.Days) == 0 {
		return NoForecastMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d-day forecast for %s:\n", len(f.Days), f.Location)

	for i, day := range f.Days {
		fmt.Fprintf(&b, "\nDay %d (%s):\n", i+1, day.Timestamp.UTC().Format("2006-01-02"))
		if !day.Available {
			fmt.Fprintf(&b, "  %s\n", DataUnavailableLabel)
			continue
		}
		fmt.Fprintf(&b, "  Condition: %s\n", titleCase(day.Condition))
		fmt.Fprintf(&b, "  Temperature: %.1f°C to %.1f°C\n", day.TempMin, day.TempMax)
		fmt.Fprintf(&b, "  Humidity: %d%%\n", day.Humidity)
		fmt.Fprintf(&b, "  Wind: %.1f m/s\n", day.WindSpeed)
	}
	return b.String()
}

// titleCase capitalizes the first letter of each word. Provider
// descriptions arrive lowercased ("scattered clouds").
func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

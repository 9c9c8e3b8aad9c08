// Package report renders human-readable weather reports from fetched
// readings: per-location details, a fixed-width summary table, continent
// aggregates and weather extremes.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"weatherreport.app/models"
)

// FormatSingleReport renders the detail block for one reading
func FormatSingleReport(weather models.WeatherReading) string {
	lines := []string{
		fmt.Sprintf("  Country     : %s", weather.Country),
		fmt.Sprintf("  Capital     : %s", weather.Capital),
		fmt.Sprintf("  Continent   : %s", weather.Continent),
		fmt.Sprintf("  Temperature : %s", weather.TemperatureDisplay()),
		fmt.Sprintf("  Humidity    : %d%%", weather.Humidity),
		fmt.Sprintf("  Wind Speed  : %.1f km/h", weather.WindSpeedKmh),
		fmt.Sprintf("  Condition   : %s", weather.Condition),
	}
	return strings.Join(lines, "\n")
}

// FormatSummaryTable renders a fixed-width table with one row per reading
func FormatSummaryTable(weatherList []models.WeatherReading) string {
	header := fmt.Sprintf("%-40s %-25s %-10s %-10s %-10s %-12s %-15s",
		"Country", "Capital", "Temp (C)", "Temp (F)", "Humidity", "Wind (km/h)", "Condition")
	separator := strings.Repeat("-", len(header))

	rows := make([]string, 0, len(weatherList))
	for _, w := range weatherList {
		rows = append(rows, fmt.Sprintf("%-40s %-25s %-10.1f %-10.1f %-10d %-12.1f %-15s",
			w.Country, w.Capital, w.TemperatureCelsius, w.TemperatureFahrenheit,
			w.Humidity, w.WindSpeedKmh, w.Condition))
	}

	return strings.Join(append([]string{header, separator}, rows...), "\n")
}

// FormatContinentSummary renders per-continent aggregates, continents sorted
// alphabetically
func FormatContinentSummary(weatherList []models.WeatherReading) string {
	byContinent := make(map[string][]models.WeatherReading)
	for _, w := range weatherList {
		byContinent[w.Continent] = append(byContinent[w.Continent], w)
	}

	continents := make([]string, 0, len(byContinent))
	for continent := range byContinent {
		continents = append(continents, continent)
	}
	sort.Strings(continents)

	var lines []string
	for _, continent := range continents {
		data := byContinent[continent]

		minTemp := data[0].TemperatureCelsius
		maxTemp := data[0].TemperatureCelsius
		var tempSum, humiditySum float64
		for _, w := range data {
			tempSum += w.TemperatureCelsius
			humiditySum += float64(w.Humidity)
			if w.TemperatureCelsius < minTemp {
				minTemp = w.TemperatureCelsius
			}
			if w.TemperatureCelsius > maxTemp {
				maxTemp = w.TemperatureCelsius
			}
		}
		count := float64(len(data))

		lines = append(lines,
			fmt.Sprintf("\n  %s (%d countries)", continent, len(data)),
			fmt.Sprintf("    Avg Temperature : %.1f°C", tempSum/count),
			fmt.Sprintf("    Min Temperature : %.1f°C", minTemp),
			fmt.Sprintf("    Max Temperature : %.1f°C", maxTemp),
			fmt.Sprintf("    Avg Humidity    : %.0f%%", humiditySum/count),
		)
	}

	return strings.Join(lines, "\n")
}

// GenerateFullReport renders the complete report with a UTC timestamp,
// detailed table and continent summary
func GenerateFullReport(weatherList []models.WeatherReading) string {
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
	rule := strings.Repeat("=", 80)

	sections := []string{
		rule,
		"  WORLD WEATHER REPORT",
		fmt.Sprintf("  Generated: %s", timestamp),
		fmt.Sprintf("  Countries: %d", len(weatherList)),
		rule,
		"",
		"DETAILED TABLE",
		strings.Repeat("-", 40),
		FormatSummaryTable(weatherList),
		"",
		"CONTINENT SUMMARY",
		strings.Repeat("-", 40),
		FormatContinentSummary(weatherList),
		"",
		rule,
		fmt.Sprintf("  Report complete. %d countries processed.", len(weatherList)),
		rule,
	}
	return strings.Join(sections, "\n")
}

// Extremes holds the standout readings of a report. Fields are nil when the
// input was empty.
type Extremes struct {
	Hottest   *models.WeatherReading
	Coldest   *models.WeatherReading
	MostHumid *models.WeatherReading
	Windiest  *models.WeatherReading
}

// FindExtremes selects the hottest, coldest, most humid and windiest readings
func FindExtremes(weatherList []models.WeatherReading) Extremes {
	if len(weatherList) == 0 {
		return Extremes{}
	}

	extremes := Extremes{
		Hottest:   &weatherList[0],
		Coldest:   &weatherList[0],
		MostHumid: &weatherList[0],
		Windiest:  &weatherList[0],
	}
	for i := range weatherList {
		w := &weatherList[i]
		if w.TemperatureCelsius > extremes.Hottest.TemperatureCelsius {
			extremes.Hottest = w
		}
		if w.TemperatureCelsius < extremes.Coldest.TemperatureCelsius {
			extremes.Coldest = w
		}
		if w.Humidity > extremes.MostHumid.Humidity {
			extremes.MostHumid = w
		}
		if w.WindSpeedKmh > extremes.Windiest.WindSpeedKmh {
			extremes.Windiest = w
		}
	}
	return extremes
}

// FormatExtremes renders the weather extremes block
func FormatExtremes(weatherList []models.WeatherReading) string {
	extremes := FindExtremes(weatherList)
	if extremes.Hottest == nil {
		return "No data available for extremes."
	}

	lines := []string{
		"\n  WEATHER EXTREMES",
		"  " + strings.Repeat("-", 40),
		fmt.Sprintf("  Hottest     : %s (%s) - %.1f°C",
			extremes.Hottest.Country, extremes.Hottest.Capital, extremes.Hottest.TemperatureCelsius),
		fmt.Sprintf("  Coldest     : %s (%s) - %.1f°C",
			extremes.Coldest.Country, extremes.Coldest.Capital, extremes.Coldest.TemperatureCelsius),
		fmt.Sprintf("  Most Humid  : %s (%s) - %d%%",
			extremes.MostHumid.Country, extremes.MostHumid.Capital, extremes.MostHumid.Humidity),
		fmt.Sprintf("  Windiest    : %s (%s) - %.1f km/h",
			extremes.Windiest.Country, extremes.Windiest.Capital, extremes.Windiest.WindSpeedKmh),
	}

	return strings.Join(lines, "\n")
}

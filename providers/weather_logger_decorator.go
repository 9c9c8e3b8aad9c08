package providers

import (
	"log/slog"
	"time"

	"weatherreport.app/models"
)

// WeatherLoggerDecorator wraps a WeatherProvider and logs every fetch with
// its outcome and duration.
type WeatherLoggerDecorator struct {
	wrappedProvider WeatherProvider
	logger          *slog.Logger
	providerName    string
}

// NewWeatherLoggerDecorator creates a logging decorator around a provider
func NewWeatherLoggerDecorator(provider WeatherProvider, logger *slog.Logger, providerName string) WeatherProvider {
	return &WeatherLoggerDecorator{
		wrappedProvider: provider,
		logger:          logger,
		providerName:    providerName,
	}
}

func (d *WeatherLoggerDecorator) FetchCurrent(country models.Country) (*models.WeatherReading, error) {
	d.logger.Debug("Fetching weather",
		"provider", d.providerName, "country", country.Name, "capital", country.Capital)
	startTime := time.Now()

	reading, err := d.wrappedProvider.FetchCurrent(country)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather fetch failed",
			"provider", d.providerName, "country", country.Name, "error", err, "duration", duration)
		return nil, err
	}

	d.logger.Debug("Weather fetch succeeded",
		"provider", d.providerName, "country", country.Name,
		"condition", reading.Condition, "duration", duration)
	return reading, nil
}

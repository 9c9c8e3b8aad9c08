// Package service implements the weather business logic: single-country
// lookups and the sequential batch fetch pipeline.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"weatherreport.app/errors"
	"weatherreport.app/metrics"
	"weatherreport.app/models"
	"weatherreport.app/providers"
)

// BatchPolicy governs how the batch pipeline reacts to a failed fetch
type BatchPolicy int

const (
	// SkipFailures records the failure and continues with the next location
	SkipFailures BatchPolicy = iota
	// AbortOnFailure stops at the first failure and discards partial results
	AbortOnFailure
)

// String returns the policy name for logs
func (p BatchPolicy) String() string {
	switch p {
	case AbortOnFailure:
		return "abort"
	default:
		return "skip"
	}
}

// BatchFailure records a single failed fetch under the skip policy
type BatchFailure struct {
	Country string `json:"country"`
	Capital string `json:"capital"`
	Err     error  `json:"-"`
}

// BatchResult carries the readings of a batch fetch together with the
// failures that were skipped, so callers can surface them instead of
// silently losing locations.
type BatchResult struct {
	Readings []models.WeatherReading
	Failures []BatchFailure
}

// WeatherService handles weather-related operations
type WeatherService struct {
	repo         GeographyRepositoryInterface
	provider     providers.WeatherProvider
	fetchMetrics *metrics.FetchMetrics
}

// NewWeatherService creates a new weather service over a geography
// repository and a weather provider
func NewWeatherService(repo GeographyRepositoryInterface, provider providers.WeatherProvider) *WeatherService {
	return &WeatherService{
		repo:         repo,
		provider:     provider,
		fetchMetrics: metrics.NewFetchMetrics("openmeteo"),
	}
}

// GetWeather retrieves the current weather reading for a named country
func (s *WeatherService) GetWeather(countryName string) (*models.WeatherReading, error) {
	if countryName == "" {
		return nil, errors.NewValidationError("country name cannot be empty")
	}

	country, err := s.repo.CountryByName(countryName)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("country '%s' not found", countryName))
	}

	return s.fetch(*country)
}

// FetchBatch fetches weather for the given countries strictly in input
// order, one at a time. Under SkipFailures every failed location is recorded
// in the result and iteration continues; under AbortOnFailure the first
// failure aborts the batch and no partial result is returned. An empty input
// yields an empty result without any network call.
func (s *WeatherService) FetchBatch(countries []models.Country, policy BatchPolicy) (*BatchResult, error) {
	result := &BatchResult{}

	for _, country := range countries {
		reading, err := s.fetch(country)
		if err != nil {
			if policy == AbortOnFailure {
				return nil, err
			}
			slog.Warn("Skipping failed weather fetch",
				"country", country.Name, "capital", country.Capital, "error", err)
			result.Failures = append(result.Failures, BatchFailure{
				Country: country.Name,
				Capital: country.Capital,
				Err:     err,
			})
			continue
		}
		result.Readings = append(result.Readings, *reading)
	}

	return result, nil
}

// GetFetchStats returns accumulated fetch counters for diagnostics
func (s *WeatherService) GetFetchStats() map[string]interface{} {
	return s.fetchMetrics.GetStats()
}

func (s *WeatherService) fetch(country models.Country) (*models.WeatherReading, error) {
	startTime := time.Now()
	reading, err := s.provider.FetchCurrent(country)
	duration := time.Since(startTime).Seconds()

	if err != nil {
		s.fetchMetrics.RecordFailure(duration)
		return nil, err
	}

	s.fetchMetrics.RecordSuccess(duration)
	return reading, nil
}

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "weatherreport.app/errors"
	"weatherreport.app/models"
)

type fakeRepo struct {
	GeographyRepositoryInterface
	countries map[string]*models.Country
}

func (f *fakeRepo) CountryByName(name string) (*models.Country, error) {
	return f.countries[name], nil
}

// fakeProvider fails for countries listed in failing and counts every call.
type fakeProvider struct {
	failing map[string]error
	calls   []string
}

func (f *fakeProvider) FetchCurrent(country models.Country) (*models.WeatherReading, error) {
	f.calls = append(f.calls, country.Name)
	if err, ok := f.failing[country.Name]; ok {
		return nil, err
	}
	return &models.WeatherReading{
		Country:   country.Name,
		Capital:   country.Capital,
		Continent: country.Continent,
		Condition: models.ConditionClear,
	}, nil
}

var (
	countryA = models.Country{Name: "Austria", Capital: "Vienna", Continent: "Europe"}
	countryB = models.Country{Name: "Brazil", Capital: "Brasília", Continent: "South America"}
	countryC = models.Country{Name: "Canada", Capital: "Ottawa", Continent: "North America"}
)

func TestGetWeather(t *testing.T) {
	t.Run("KnownCountry", func(t *testing.T) {
		repo := &fakeRepo{countries: map[string]*models.Country{"Austria": &countryA}}
		provider := &fakeProvider{}
		svc := NewWeatherService(repo, provider)

		reading, err := svc.GetWeather("Austria")

		require.NoError(t, err)
		assert.Equal(t, "Austria", reading.Country)
		assert.Equal(t, []string{"Austria"}, provider.calls)
	})

	t.Run("UnknownCountry", func(t *testing.T) {
		repo := &fakeRepo{countries: map[string]*models.Country{}}
		provider := &fakeProvider{}
		svc := NewWeatherService(repo, provider)

		reading, err := svc.GetWeather("Atlantis")

		assert.Nil(t, reading)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
		assert.Contains(t, appErr.Message, "Atlantis")
		assert.Empty(t, provider.calls)
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewWeatherService(&fakeRepo{}, &fakeProvider{})

		reading, err := svc.GetWeather("")

		assert.Nil(t, reading)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestFetchBatch(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := NewWeatherService(&fakeRepo{}, provider)

		for _, policy := range []BatchPolicy{SkipFailures, AbortOnFailure} {
			result, err := svc.FetchBatch(nil, policy)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Empty(t, result.Readings)
			assert.Empty(t, result.Failures)
		}
		assert.Empty(t, provider.calls, "no network calls for empty input")
	})

	t.Run("AllSucceed", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := NewWeatherService(&fakeRepo{}, provider)

		result, err := svc.FetchBatch([]models.Country{countryA, countryB, countryC}, SkipFailures)

		require.NoError(t, err)
		require.Len(t, result.Readings, 3)
		// Input order preserved
		assert.Equal(t, "Austria", result.Readings[0].Country)
		assert.Equal(t, "Brazil", result.Readings[1].Country)
		assert.Equal(t, "Canada", result.Readings[2].Country)
		assert.Empty(t, result.Failures)
	})

	t.Run("SkipPolicyContinuesPastFailures", func(t *testing.T) {
		fetchErr := apperrors.NewWeatherServiceError("failed to fetch weather for Brazil (Brasília)", nil)
		provider := &fakeProvider{failing: map[string]error{"Brazil": fetchErr}}
		svc := NewWeatherService(&fakeRepo{}, provider)

		result, err := svc.FetchBatch([]models.Country{countryA, countryB, countryC}, SkipFailures)

		require.NoError(t, err)
		require.Len(t, result.Readings, 2)
		assert.Equal(t, "Austria", result.Readings[0].Country)
		assert.Equal(t, "Canada", result.Readings[1].Country)

		require.Len(t, result.Failures, 1)
		assert.Equal(t, "Brazil", result.Failures[0].Country)
		assert.Equal(t, "Brasília", result.Failures[0].Capital)
		assert.Equal(t, fetchErr, result.Failures[0].Err)

		assert.Equal(t, []string{"Austria", "Brazil", "Canada"}, provider.calls)
	})

	t.Run("AbortPolicyPropagatesFirstError", func(t *testing.T) {
		fetchErr := apperrors.NewWeatherServiceError("failed to fetch weather for Austria (Vienna)", nil)
		provider := &fakeProvider{failing: map[string]error{"Austria": fetchErr}}
		svc := NewWeatherService(&fakeRepo{}, provider)

		result, err := svc.FetchBatch([]models.Country{countryA}, AbortOnFailure)

		assert.Nil(t, result, "no partial results on abort")
		assert.Equal(t, fetchErr, err)
		assert.Equal(t, []string{"Austria"}, provider.calls)
	})

	t.Run("AbortDiscardsPartialResults", func(t *testing.T) {
		fetchErr := apperrors.NewWeatherServiceError("failed to fetch weather for Brazil (Brasília)", nil)
		provider := &fakeProvider{failing: map[string]error{"Brazil": fetchErr}}
		svc := NewWeatherService(&fakeRepo{}, provider)

		result, err := svc.FetchBatch([]models.Country{countryA, countryB, countryC}, AbortOnFailure)

		assert.Nil(t, result)
		assert.Equal(t, fetchErr, err)
		// Iteration stopped at the failing country
		assert.Equal(t, []string{"Austria", "Brazil"}, provider.calls)
	})
}

func TestBatchPolicy_String(t *testing.T) {
	assert.Equal(t, "skip", SkipFailures.String())
	assert.Equal(t, "abort", AbortOnFailure.String())
}

package providers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreport.app/config"
	apperrors "weatherreport.app/errors"
	"weatherreport.app/models"
)

var testCountry = models.Country{
	Name:      "Japan",
	Capital:   "Tokyo",
	Continent: "Asia",
	Latitude:  35.6762,
	Longitude: 139.6503,
}

func newTestProvider(baseURL string) *OpenMeteoProvider {
	return NewOpenMeteoProvider(&config.WeatherConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	})
}

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{37, 98.6},
		{25.5, 77.9},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.fahrenheit, CelsiusToFahrenheit(tt.celsius), 1e-9,
			"celsius=%v", tt.celsius)
	}
}

func TestInterpretWeatherCode(t *testing.T) {
	tests := []struct {
		codes    []int
		expected models.Condition
	}{
		{[]int{0, 1}, models.ConditionClear},
		{[]int{2}, models.ConditionPartlyCloudy},
		{[]int{3}, models.ConditionOvercast},
		{[]int{45, 48}, models.ConditionFog},
		{[]int{51, 53, 55, 56, 57}, models.ConditionDrizzle},
		{[]int{61, 63, 65, 66, 67, 80, 81, 82}, models.ConditionRain},
		{[]int{71, 73, 75, 77, 85, 86}, models.ConditionSnow},
		{[]int{95, 96, 99}, models.ConditionThunderstorm},
		{[]int{4, 50, 100, 999, -1, -99}, models.ConditionUnknown},
	}

	for _, tt := range tests {
		for _, code := range tt.codes {
			assert.Equal(t, tt.expected, InterpretWeatherCode(code), "code=%d", code)
		}
	}
}

func TestOpenMeteoProvider_FetchCurrent(t *testing.T) {
	t.Run("ValidWeatherResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "35.6762", query.Get("latitude"))
			assert.Equal(t, "139.6503", query.Get("longitude"))
			assert.Equal(t, "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m", query.Get("current"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{
				"current": {
					"temperature_2m": 21.5,
					"relative_humidity_2m": 64,
					"weather_code": 2,
					"wind_speed_10m": 11.3
				}
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		require.NoError(t, err)
		require.NotNil(t, reading)
		assert.Equal(t, "Japan", reading.Country)
		assert.Equal(t, "Tokyo", reading.Capital)
		assert.Equal(t, "Asia", reading.Continent)
		assert.Equal(t, 21.5, reading.TemperatureCelsius)
		assert.InDelta(t, 70.7, reading.TemperatureFahrenheit, 1e-9)
		assert.Equal(t, 64, reading.Humidity)
		assert.Equal(t, 11.3, reading.WindSpeedKmh)
		assert.Equal(t, models.ConditionPartlyCloudy, reading.Condition)
		assert.Equal(t, 2, reading.WeatherCode)
	})

	t.Run("ConditionFromCode", func(t *testing.T) {
		tests := []struct {
			code     int
			expected models.Condition
		}{
			{0, models.ConditionClear},
			{63, models.ConditionRain},
			{73, models.ConditionSnow},
		}

		for _, tt := range tests {
			code := tt.code
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, err := w.Write([]byte(`{
					"current": {
						"temperature_2m": 5.0,
						"relative_humidity_2m": 80,
						"weather_code": ` + strconv.Itoa(code) + `,
						"wind_speed_10m": 7.0
					}
				}`))
				require.NoError(t, err)
			}))

			provider := newTestProvider(mockServer.URL)
			reading, err := provider.FetchCurrent(testCountry)
			mockServer.Close()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, reading.Condition, "code=%d", tt.code)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		assert.Error(t, err)
		assert.Nil(t, reading)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.WeatherServiceError, appErr.Type)
		assert.Contains(t, appErr.Message, "Japan")
		assert.Contains(t, appErr.Message, "Tokyo")
		assert.Contains(t, appErr.Message, "status code 500")
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		assert.Error(t, err)
		assert.Nil(t, reading)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.WeatherServiceError, appErr.Type)
		assert.Contains(t, appErr.Message, "Japan (Tokyo)")
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`invalid json`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		assert.Error(t, err)
		assert.Nil(t, reading)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.WeatherServiceError, appErr.Type)
		assert.Contains(t, appErr.Message, "invalid response for Japan (Tokyo)")
	})

	t.Run("MissingCurrentField", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{"latitude": 35.6762}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		assert.Error(t, err)
		assert.Nil(t, reading)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.WeatherServiceError, appErr.Type)
		assert.Contains(t, appErr.Message, "Japan")
		assert.Contains(t, appErr.Message, "missing current field")
	})

	t.Run("MissingNumericField", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{
				"current": {
					"temperature_2m": 15.0,
					"weather_code": 1,
					"wind_speed_10m": 3.0
				}
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		reading, err := provider.FetchCurrent(testCountry)

		assert.Error(t, err)
		assert.Nil(t, reading)
		assert.Contains(t, err.Error(), "missing relative_humidity_2m")
	})
}

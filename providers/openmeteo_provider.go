// Package providers implements clients for external weather services
package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"weatherreport.app/config"
	"weatherreport.app/errors"
	"weatherreport.app/models"
)

// currentFields is the comma-joined field list requested from the forecast endpoint
const currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// wmoCodeMap maps WMO weather codes to conditions. Codes absent from the map
// resolve to ConditionUnknown, never an error.
var wmoCodeMap = map[int]models.Condition{
	0:  models.ConditionClear,
	1:  models.ConditionClear,
	2:  models.ConditionPartlyCloudy,
	3:  models.ConditionOvercast,
	45: models.ConditionFog,
	48: models.ConditionFog,
	51: models.ConditionDrizzle,
	53: models.ConditionDrizzle,
	55: models.ConditionDrizzle,
	56: models.ConditionDrizzle,
	57: models.ConditionDrizzle,
	61: models.ConditionRain,
	63: models.ConditionRain,
	65: models.ConditionRain,
	66: models.ConditionRain,
	67: models.ConditionRain,
	71: models.ConditionSnow,
	73: models.ConditionSnow,
	75: models.ConditionSnow,
	77: models.ConditionSnow,
	80: models.ConditionRain,
	81: models.ConditionRain,
	82: models.ConditionRain,
	85: models.ConditionSnow,
	86: models.ConditionSnow,
	95: models.ConditionThunderstorm,
	96: models.ConditionThunderstorm,
	99: models.ConditionThunderstorm,
}

// CelsiusToFahrenheit converts a temperature using the exact linear formula
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// InterpretWeatherCode resolves a WMO weather code to a condition
func InterpretWeatherCode(code int) models.Condition {
	if condition, ok := wmoCodeMap[code]; ok {
		return condition
	}
	return models.ConditionUnknown
}

// OpenMeteoProvider implements WeatherProvider for the Open-Meteo forecast API
type OpenMeteoProvider struct {
	baseURL string
	client  *http.Client
}

// NewOpenMeteoProvider creates a new Open-Meteo provider
func NewOpenMeteoProvider(config *config.WeatherConfig) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: config.RequestTimeout},
	}
}

// FetchCurrent retrieves the current weather reading for a country's capital
// coordinates. It performs exactly one outbound call; any transport failure,
// non-2xx status or malformed body is reported as a WeatherServiceError
// carrying the country and capital names.
func (p *OpenMeteoProvider) FetchCurrent(country models.Country) (*models.WeatherReading, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", country.Latitude))
	params.Set("longitude", fmt.Sprintf("%g", country.Longitude))
	params.Set("current", currentFields)

	resp, err := p.client.Get(fmt.Sprintf("%s?%s", p.baseURL, params.Encode()))
	if err != nil {
		return nil, errors.NewWeatherServiceError(
			fmt.Sprintf("failed to fetch weather for %s (%s)", country.Name, country.Capital), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewWeatherServiceError(
			fmt.Sprintf("failed to fetch weather for %s (%s): status code %d",
				country.Name, country.Capital, resp.StatusCode), nil)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewWeatherServiceError(
			fmt.Sprintf("invalid response for %s (%s)", country.Name, country.Capital), err)
	}

	current, ok := result["current"].(map[string]interface{})
	if !ok {
		return nil, p.invalidResponse(country, "missing current field")
	}

	temperature, ok := current["temperature_2m"].(float64)
	if !ok {
		return nil, p.invalidResponse(country, "missing temperature_2m")
	}

	humidity, ok := current["relative_humidity_2m"].(float64)
	if !ok {
		return nil, p.invalidResponse(country, "missing relative_humidity_2m")
	}

	weatherCode, ok := current["weather_code"].(float64)
	if !ok {
		return nil, p.invalidResponse(country, "missing weather_code")
	}

	windSpeed, ok := current["wind_speed_10m"].(float64)
	if !ok {
		return nil, p.invalidResponse(country, "missing wind_speed_10m")
	}

	code := int(weatherCode)
	return &models.WeatherReading{
		Country:               country.Name,
		Capital:               country.Capital,
		Continent:             country.Continent,
		TemperatureCelsius:    temperature,
		TemperatureFahrenheit: CelsiusToFahrenheit(temperature),
		Humidity:              int(humidity),
		WindSpeedKmh:          windSpeed,
		Condition:             InterpretWeatherCode(code),
		WeatherCode:           code,
	}, nil
}

func (p *OpenMeteoProvider) invalidResponse(country models.Country, reason string) error {
	return errors.NewWeatherServiceError(
		fmt.Sprintf("invalid response for %s (%s): %s", country.Name, country.Capital, reason), nil)
}

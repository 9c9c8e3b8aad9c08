// Package models defines data structures used throughout the application
package models

import "fmt"

// Country represents a country with its capital coordinates
type Country struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Capital   string  `json:"capital" gorm:"not null" validate:"required"`
	Continent string  `json:"continent" gorm:"index;not null" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// City represents a city belonging to a country and region
type City struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Country   string  `json:"country" gorm:"index;not null" validate:"required"`
	Region    string  `json:"region" gorm:"not null" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	IsCapital bool    `json:"is_capital"`
}

// Region represents an administrative region within a country
type Region struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Country   string `json:"country" gorm:"index;not null" validate:"required"`
	Continent string `json:"continent" gorm:"index;not null" validate:"required"`
}

// Condition is the categorical weather state derived from a WMO weather code
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionOvercast     Condition = "Overcast"
	ConditionFog          Condition = "Fog"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionUnknown      Condition = "Unknown"
)

// WeatherReading represents one fetched weather observation for a country.
// TemperatureFahrenheit is always derived from TemperatureCelsius, never
// supplied independently.
type WeatherReading struct {
	Country               string    `json:"country"`
	Capital               string    `json:"capital"`
	Continent             string    `json:"continent"`
	TemperatureCelsius    float64   `json:"temperature_celsius"`
	TemperatureFahrenheit float64   `json:"temperature_fahrenheit"`
	Humidity              int       `json:"humidity"`
	WindSpeedKmh          float64   `json:"wind_speed_kmh"`
	Condition             Condition `json:"condition"`
	WeatherCode           int       `json:"weather_code"`
}

// TemperatureDisplay returns the temperature formatted in both units
func (w WeatherReading) TemperatureDisplay() string {
	return fmt.Sprintf("%.1f°C / %.1f°F", w.TemperatureCelsius, w.TemperatureFahrenheit)
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

package providers

import "weatherreport.app/models"

// WeatherProvider defines the interface for current-weather data providers
type WeatherProvider interface {
	FetchCurrent(country models.Country) (*models.WeatherReading, error)
}

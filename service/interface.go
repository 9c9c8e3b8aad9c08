package service

import "weatherreport.app/models"

// WeatherServiceInterface defines the interface for weather operations
type WeatherServiceInterface interface {
	GetWeather(countryName string) (*models.WeatherReading, error)
	FetchBatch(countries []models.Country, policy BatchPolicy) (*BatchResult, error)
	GetFetchStats() map[string]interface{}
}

// GeographyRepositoryInterface defines the interface for geography lookups
type GeographyRepositoryInterface interface {
	CountryByName(name string) (*models.Country, error)
	AllCountries() ([]models.Country, error)
	CountriesByContinent(continent string) ([]models.Country, error)
	AllContinents() ([]string, error)
	CityByName(name string) (*models.City, error)
	AllCities() ([]models.City, error)
	CitiesByCountry(country string) ([]models.City, error)
	CapitalCities() ([]models.City, error)
	AllRegions() ([]models.Region, error)
	RegionsByCountry(country string) ([]models.Region, error)
	RegionsByContinent(continent string) ([]models.Region, error)
}

// Ensure implementations satisfy interfaces
var _ WeatherServiceInterface = (*WeatherService)(nil)

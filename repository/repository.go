// Package repository implements data access for the geography store
package repository

import (
	"errors"

	"gorm.io/gorm"
	apperrors "weatherreport.app/errors"
	"weatherreport.app/models"
)

// GeographyRepository handles read access to the static geography tables.
// Name lookups are case-insensitive exact matches. Single lookups return
// (nil, nil) when no entry matches; filters return an empty slice.
type GeographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository creates a new repository over the geography database
func NewGeographyRepository(db *gorm.DB) *GeographyRepository {
	return &GeographyRepository{db: db}
}

// CountryByName retrieves a country by name, case-insensitively
func (r *GeographyRepository) CountryByName(name string) (*models.Country, error) {
	var country models.Country
	result := r.db.Where("LOWER(name) = LOWER(?)", name).First(&country)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("failed to look up country", result.Error)
	}
	return &country, nil
}

// AllCountries retrieves every country ordered by name
func (r *GeographyRepository) AllCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.Order("name").Find(&countries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list countries", err)
	}
	return countries, nil
}

// CountriesByContinent retrieves the countries of a continent, case-insensitively
func (r *GeographyRepository) CountriesByContinent(continent string) ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.Where("LOWER(continent) = LOWER(?)", continent).Order("name").Find(&countries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list countries by continent", err)
	}
	return countries, nil
}

// AllContinents retrieves the distinct continent names ordered alphabetically
func (r *GeographyRepository) AllContinents() ([]string, error) {
	var continents []string
	if err := r.db.Model(&models.Country{}).Distinct("continent").Order("continent").Pluck("continent", &continents).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list continents", err)
	}
	return continents, nil
}

// CityByName retrieves a city by name, case-insensitively
func (r *GeographyRepository) CityByName(name string) (*models.City, error) {
	var city models.City
	result := r.db.Where("LOWER(name) = LOWER(?)", name).First(&city)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("failed to look up city", result.Error)
	}
	return &city, nil
}

// AllCities retrieves every city ordered by name
func (r *GeographyRepository) AllCities() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Order("name").Find(&cities).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list cities", err)
	}
	return cities, nil
}

// CitiesByCountry retrieves the cities of a country, case-insensitively
func (r *GeographyRepository) CitiesByCountry(country string) ([]models.City, error) {
	var cities []models.City
	if err := r.db.Where("LOWER(country) = LOWER(?)", country).Order("name").Find(&cities).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list cities by country", err)
	}
	return cities, nil
}

// CapitalCities retrieves every city flagged as a capital
func (r *GeographyRepository) CapitalCities() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Where("is_capital = ?", true).Order("name").Find(&cities).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list capital cities", err)
	}
	return cities, nil
}

// AllRegions retrieves every region ordered by name
func (r *GeographyRepository) AllRegions() ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.Order("name").Find(&regions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list regions", err)
	}
	return regions, nil
}

// RegionsByCountry retrieves the regions of a country, case-insensitively
func (r *GeographyRepository) RegionsByCountry(country string) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.Where("LOWER(country) = LOWER(?)", country).Order("name").Find(&regions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list regions by country", err)
	}
	return regions, nil
}

// RegionsByContinent retrieves the regions of a continent, case-insensitively
func (r *GeographyRepository) RegionsByContinent(continent string) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.Where("LOWER(continent) = LOWER(?)", continent).Order("name").Find(&regions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("failed to list regions by continent", err)
	}
	return regions, nil
}

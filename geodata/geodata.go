// Package geodata holds the embedded static geography dataset the
// application is seeded from. The tables are fixed at build time and
// validated before seeding; entries are never mutated at runtime.
package geodata

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"weatherreport.app/errors"
	"weatherreport.app/models"
)

// Countries returns a copy of the static country table. Coordinates are
// those of each country's capital.
func Countries() []models.Country {
	out := make([]models.Country, len(countries))
	copy(out, countries)
	return out
}

// Cities returns a copy of the static city table.
func Cities() []models.City {
	out := make([]models.City, len(cities))
	copy(out, cities)
	return out
}

// Regions returns a copy of the static region table.
func Regions() []models.Region {
	out := make([]models.Region, len(regions))
	copy(out, regions)
	return out
}

// Validate checks every row of the embedded dataset against its declared
// constraints (non-empty names, latitude/longitude ranges) and rejects
// duplicate names within a table.
func Validate() error {
	validate := validator.New()

	countryNames := make(map[string]bool, len(countries))
	for _, country := range countries {
		if err := validate.Struct(country); err != nil {
			return errors.NewValidationError(fmt.Sprintf("invalid country %q: %v", country.Name, err))
		}
		if countryNames[country.Name] {
			return errors.NewValidationError(fmt.Sprintf("duplicate country name %q", country.Name))
		}
		countryNames[country.Name] = true
	}

	cityNames := make(map[string]bool, len(cities))
	for _, city := range cities {
		if err := validate.Struct(city); err != nil {
			return errors.NewValidationError(fmt.Sprintf("invalid city %q: %v", city.Name, err))
		}
		if cityNames[city.Name] {
			return errors.NewValidationError(fmt.Sprintf("duplicate city name %q", city.Name))
		}
		cityNames[city.Name] = true
	}

	regionNames := make(map[string]bool, len(regions))
	for _, region := range regions {
		if err := validate.Struct(region); err != nil {
			return errors.NewValidationError(fmt.Sprintf("invalid region %q: %v", region.Name, err))
		}
		if regionNames[region.Name] {
			return errors.NewValidationError(fmt.Sprintf("duplicate region name %q", region.Name))
		}
		regionNames[region.Name] = true
	}

	return nil
}

package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestCountries(t *testing.T) {
	countries := Countries()
	require.NotEmpty(t, countries)

	t.Run("ReturnsCopy", func(t *testing.T) {
		first := Countries()
		first[0].Name = "Changed"
		assert.NotEqual(t, "Changed", Countries()[0].Name)
	})

	t.Run("ValidCoordinates", func(t *testing.T) {
		for _, c := range countries {
			assert.GreaterOrEqual(t, c.Latitude, -90.0, "%s has invalid latitude", c.Name)
			assert.LessOrEqual(t, c.Latitude, 90.0, "%s has invalid latitude", c.Name)
			assert.GreaterOrEqual(t, c.Longitude, -180.0, "%s has invalid longitude", c.Name)
			assert.LessOrEqual(t, c.Longitude, 180.0, "%s has invalid longitude", c.Name)
		}
	})

	t.Run("NonEmptyFields", func(t *testing.T) {
		for _, c := range countries {
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Capital, "%s has empty capital", c.Name)
			assert.NotEmpty(t, c.Continent, "%s has empty continent", c.Name)
		}
	})

	t.Run("NoDuplicateNames", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range countries {
			assert.False(t, seen[c.Name], "duplicate country %s", c.Name)
			seen[c.Name] = true
		}
	})

	t.Run("CoversAllContinents", func(t *testing.T) {
		continents := make(map[string]bool)
		for _, c := range countries {
			continents[c.Continent] = true
		}
		for _, want := range []string{"Africa", "Asia", "Europe", "North America", "South America", "Oceania"} {
			assert.True(t, continents[want], "no countries on %s", want)
		}
	})
}

func TestCities(t *testing.T) {
	cities := Cities()
	require.NotEmpty(t, cities)

	countryNames := make(map[string]bool)
	for _, c := range Countries() {
		countryNames[c.Name] = true
	}

	t.Run("CountriesExist", func(t *testing.T) {
		for _, city := range cities {
			assert.True(t, countryNames[city.Country], "city %s references unknown country %s", city.Name, city.Country)
		}
	})

	t.Run("KnownCapitalsFlagged", func(t *testing.T) {
		flagged := make(map[string]bool)
		for _, city := range cities {
			if city.IsCapital {
				flagged[city.Name] = true
			}
		}
		assert.True(t, flagged["Tokyo"])
		assert.True(t, flagged["Washington D.C."])
	})
}

func TestRegions(t *testing.T) {
	regions := Regions()
	require.NotEmpty(t, regions)

	countryNames := make(map[string]bool)
	for _, c := range Countries() {
		countryNames[c.Name] = true
	}

	for _, region := range regions {
		assert.True(t, countryNames[region.Country], "region %s references unknown country %s", region.Name, region.Country)
		assert.NotEmpty(t, region.Continent)
	}
}

package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	weathererr "weatherreport.app/errors"
	"weatherreport.app/models"
)

func (s *Server) listCountries(c *gin.Context) {
	continent := c.Query("continent")

	var countries []models.Country
	var err error
	if continent != "" {
		countries, err = s.repo.CountriesByContinent(continent)
		if err == nil && len(countries) == 0 {
			s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("continent '%s' not found", continent)))
			return
		}
	} else {
		countries, err = s.repo.AllCountries()
	}
	if err != nil {
		slog.Error("Failed to list countries", "error", err, "continent", continent)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(countries),
		"countries": countries,
	})
}

func (s *Server) getCountry(c *gin.Context) {
	name := c.Param("name")

	country, err := s.repo.CountryByName(name)
	if err != nil {
		slog.Error("Failed to look up country", "error", err, "name", name)
		s.handleError(c, err)
		return
	}
	if country == nil {
		s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("country '%s' not found", name)))
		return
	}

	cities, err := s.repo.CitiesByCountry(country.Name)
	if err != nil {
		s.handleError(c, err)
		return
	}
	regions, err := s.repo.RegionsByCountry(country.Name)
	if err != nil {
		s.handleError(c, err)
		return
	}

	cityEntries := make([]gin.H, 0, len(cities))
	for _, city := range cities {
		cityEntries = append(cityEntries, gin.H{
			"name":       city.Name,
			"region":     city.Region,
			"is_capital": city.IsCapital,
		})
	}
	regionEntries := make([]gin.H, 0, len(regions))
	for _, region := range regions {
		regionEntries = append(regionEntries, gin.H{"name": region.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      country.Name,
		"capital":   country.Capital,
		"continent": country.Continent,
		"latitude":  country.Latitude,
		"longitude": country.Longitude,
		"cities":    cityEntries,
		"regions":   regionEntries,
	})
}

func (s *Server) listCities(c *gin.Context) {
	country := c.Query("country")
	capitalsOnly := c.Query("capitals_only") == "true"

	var cities []models.City
	var err error
	switch {
	case country != "":
		cities, err = s.repo.CitiesByCountry(country)
		if err == nil && len(cities) == 0 {
			s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("no cities found for country '%s'", country)))
			return
		}
	case capitalsOnly:
		cities, err = s.repo.CapitalCities()
	default:
		cities, err = s.repo.AllCities()
	}
	if err != nil {
		slog.Error("Failed to list cities", "error", err, "country", country)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(cities),
		"cities": cities,
	})
}

func (s *Server) getCity(c *gin.Context) {
	name := c.Param("name")

	city, err := s.repo.CityByName(name)
	if err != nil {
		slog.Error("Failed to look up city", "error", err, "name", name)
		s.handleError(c, err)
		return
	}
	if city == nil {
		s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("city '%s' not found", name)))
		return
	}

	c.JSON(http.StatusOK, city)
}

func (s *Server) listRegions(c *gin.Context) {
	country := c.Query("country")
	continent := c.Query("continent")

	var regions []models.Region
	var err error
	switch {
	case country != "":
		regions, err = s.repo.RegionsByCountry(country)
		if err == nil && len(regions) == 0 {
			s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("no regions found for country '%s'", country)))
			return
		}
	case continent != "":
		regions, err = s.repo.RegionsByContinent(continent)
		if err == nil && len(regions) == 0 {
			s.handleError(c, weathererr.NewNotFoundError(fmt.Sprintf("no regions found for continent '%s'", continent)))
			return
		}
	default:
		regions, err = s.repo.AllRegions()
	}
	if err != nil {
		slog.Error("Failed to list regions", "error", err, "country", country, "continent", continent)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(regions),
		"regions": regions,
	})
}

func (s *Server) listContinents(c *gin.Context) {
	continents, err := s.repo.AllContinents()
	if err != nil {
		slog.Error("Failed to list continents", "error", err)
		s.handleError(c, err)
		return
	}

	entries := make([]gin.H, 0, len(continents))
	for _, continent := range continents {
		countries, err := s.repo.CountriesByContinent(continent)
		if err != nil {
			s.handleError(c, err)
			return
		}
		regions, err := s.repo.RegionsByContinent(continent)
		if err != nil {
			s.handleError(c, err)
			return
		}
		entries = append(entries, gin.H{
			"name":          continent,
			"country_count": len(countries),
			"region_count":  len(regions),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(entries),
		"continents": entries,
	})
}

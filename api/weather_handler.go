package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	weathererr "weatherreport.app/errors"
)

func (s *Server) getWeather(c *gin.Context) {
	country := c.Param("country")
	if country == "" {
		s.handleError(c, weathererr.NewValidationError("country parameter is required"))
		return
	}

	slog.Debug("Getting weather for country", "country", country)
	reading, err := s.weatherService.GetWeather(country)
	if err != nil {
		slog.Error("Weather service error", "error", err, "country", country)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (s *Server) debugEndpoint(c *gin.Context) {
	slog.Debug("Debug endpoint called")

	c.JSON(http.StatusOK, gin.H{
		"fetchStats": s.weatherService.GetFetchStats(),
		"config": gin.H{
			"weatherBaseURL": s.config.Weather.BaseURL,
			"requestTimeout": s.config.Weather.RequestTimeout.String(),
			"dbDriver":       s.config.Database.Driver,
		},
	})
}

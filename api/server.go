// Package api exposes the geography and weather REST surface
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherreport.app/config"
	weathererr "weatherreport.app/errors"
	"weatherreport.app/models"
	"weatherreport.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	config         *config.Config
	repo           service.GeographyRepositoryInterface
	weatherService service.WeatherServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	config *config.Config,
	repo service.GeographyRepositoryInterface,
	weatherService service.WeatherServiceInterface,
) *Server {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	server := &Server{
		router:         router,
		config:         config,
		repo:           repo,
		weatherService: weatherService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.root)
	s.router.GET("/countries", s.listCountries)
	s.router.GET("/countries/:name", s.getCountry)
	s.router.GET("/cities", s.listCities)
	s.router.GET("/cities/:name", s.getCity)
	s.router.GET("/regions", s.listRegions)
	s.router.GET("/continents", s.listContinents)
	s.router.GET("/weather/:country", s.getWeather)
	s.router.GET("/debug", s.debugEndpoint)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// requestIDMiddleware tags every request with an X-Request-ID, generating one
// when the client did not supply it
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "World Geography API",
		"endpoints": "/countries, /cities, /regions, /continents, /weather/{country}",
	})
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case weathererr.WeatherServiceError:
			statusCode = http.StatusServiceUnavailable
			message = appErr.Message
		case weathererr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

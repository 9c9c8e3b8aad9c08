// Package app wires the application's components together
package app

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"weatherreport.app/api"
	"weatherreport.app/config"
	"weatherreport.app/database"
	"weatherreport.app/pkg/logger"
	"weatherreport.app/providers"
	"weatherreport.app/repository"
	"weatherreport.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config         *config.Config
	db             *gorm.DB
	repo           *repository.GeographyRepository
	weatherService *service.WeatherService
	server         *api.Server
	logger         *logger.Logger
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{logger: logger.New()}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	app.initializeServices()

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port, "dbDriver", cfg.Database.Driver, "weatherBaseURL", cfg.Weather.BaseURL)
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing geography database...", "driver", app.config.Database.Driver)

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	if err := database.Seed(db); err != nil {
		slog.Error("Failed to seed geography dataset", "error", err)
		return fmt.Errorf("seed geography dataset: %w", err)
	}

	app.db = db
	slog.Info("Geography database initialized and seeded")
	return nil
}

func (app *Application) initializeServices() {
	slog.Info("Initializing services...")

	app.repo = repository.NewGeographyRepository(app.db)

	provider := providers.NewWeatherLoggerDecorator(
		providers.NewOpenMeteoProvider(&app.config.Weather),
		app.logger.Logger,
		"openmeteo",
	)

	app.weatherService = service.NewWeatherService(app.repo, provider)
	app.server = api.NewServer(app.config, app.repo, app.weatherService)

	slog.Info("Services initialized successfully")
}

// Start starts the HTTP server
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}

// Repo returns the geography repository
func (app *Application) Repo() *repository.GeographyRepository {
	return app.repo
}

// WeatherService returns the weather service
func (app *Application) WeatherService() *service.WeatherService {
	return app.weatherService
}

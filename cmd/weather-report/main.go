// Command weather-report generates weather reports from the terminal.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"weatherreport.app/app"
	"weatherreport.app/cli"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = application.Shutdown()
	}()

	command := cli.New(application.Repo(), application.WeatherService()).RootCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

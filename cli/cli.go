// Package cli implements the weather-report command-line interface
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"weatherreport.app/report"
	"weatherreport.app/service"
)

// CLI bundles the dependencies of the command tree
type CLI struct {
	repo           service.GeographyRepositoryInterface
	weatherService service.WeatherServiceInterface
}

// New creates a CLI over a geography repository and weather service
func New(repo service.GeographyRepositoryInterface, weatherService service.WeatherServiceInterface) *CLI {
	return &CLI{
		repo:           repo,
		weatherService: weatherService,
	}
}

// RootCommand builds the weather-report command tree
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "weather-report",
		Short:         "Generate weather reports for countries around the world",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		c.allCommand(),
		c.countryCommand(),
		c.continentCommand(),
		c.listCountriesCommand(),
		c.listContinentsCommand(),
	)

	return root
}

func (c *CLI) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Get weather report for all countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Fetching weather data for all countries... This may take a few minutes.")
			fmt.Fprintln(cmd.OutOrStdout())

			countries, err := c.repo.AllCountries()
			if err != nil {
				return err
			}

			result, err := c.weatherService.FetchBatch(countries, service.SkipFailures)
			if err != nil {
				return err
			}

			c.printBatchReport(cmd, result)
			return nil
		},
	}
}

func (c *CLI) countryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "country NAME",
		Short: "Get weather for a specific country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			country, err := c.repo.CountryByName(name)
			if err != nil {
				return err
			}
			if country == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Use 'weather-report list-countries' to see available countries.")
				return fmt.Errorf("country '%s' not found", name)
			}

			weather, err := c.weatherService.GetWeather(country.Name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n  Weather Report for %s\n", country.Name)
			fmt.Fprintln(cmd.OutOrStdout(), "  ----------------------------------------")
			fmt.Fprintln(cmd.OutOrStdout(), report.FormatSingleReport(*weather))
			return nil
		},
	}
}

func (c *CLI) continentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "continent NAME",
		Short: "Get weather for all countries in a continent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			countries, err := c.repo.CountriesByContinent(name)
			if err != nil {
				return err
			}
			if len(countries) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Use 'weather-report list-continents' to see available continents.")
				return fmt.Errorf("continent '%s' not found", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fetching weather data for %s (%d countries)...\n\n", name, len(countries))

			result, err := c.weatherService.FetchBatch(countries, service.SkipFailures)
			if err != nil {
				return err
			}

			c.printBatchReport(cmd, result)
			return nil
		},
	}
}

func (c *CLI) listCountriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-countries",
		Short: "List all available countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := c.repo.AllCountries()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nAvailable Countries (%d):\n", len(countries))
			fmt.Fprintln(cmd.OutOrStdout(), "------------------------------------------------------------")
			for _, country := range countries {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-40s Capital: %s\n", country.Name, country.Capital)
			}
			return nil
		},
	}
}

func (c *CLI) listContinentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-continents",
		Short: "List all continents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			continents, err := c.repo.AllContinents()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nAvailable Continents:")
			fmt.Fprintln(cmd.OutOrStdout(), "------------------------------")
			for _, continent := range continents {
				countries, err := c.repo.CountriesByContinent(continent)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s (%d countries)\n", continent, len(countries))
			}
			return nil
		},
	}
}

// printBatchReport prints the full report, extremes and a note for any
// locations skipped by the batch pipeline.
func (c *CLI) printBatchReport(cmd *cobra.Command, result *service.BatchResult) {
	fmt.Fprintln(cmd.OutOrStdout(), report.GenerateFullReport(result.Readings))
	fmt.Fprintln(cmd.OutOrStdout(), report.FormatExtremes(result.Readings))

	if len(result.Failures) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nWarning: %d countries skipped due to fetch errors:\n", len(result.Failures))
		for _, failure := range result.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s (%s): %v\n", failure.Country, failure.Capital, failure.Err)
		}
	}
}

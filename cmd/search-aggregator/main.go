// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the search-aggregator CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-aggregator/internal/logging"
	"github.com/pdiddy/search-aggregator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide logger, configured in PersistentPreRunE.
var log zerolog.Logger

// apiKey is the SerpAPI credential, resolved at startup from the config
// file, the environment, or .secrets/.
var apiKey string

// rootCmd is the base command for the search-aggregator CLI.
var rootCmd = &cobra.Command{
	Use:   "search-aggregator",
	Short: "Aggregate results from multiple search engines behind one API",
	Long: `search-aggregator issues one query against several SerpAPI engines
(google, bing, duckduckgo, yahoo), normalizes the hits into a common record
shape, and appends a markdown report for later inspection.

Run searches directly with the search subcommand, expose the aggregator to an
agent orchestrator with serve, and inspect past runs with history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logFile, _ := cmd.Flags().GetString("log-file")
		log = logging.New(logFile)

		apiKey = viper.GetString("api_key")
		if apiKey == "" {
			apiKey = os.Getenv("SERPAPI_API_KEY")
		}
		if apiKey == "" {
			apiKey = secrets.APIKey(".secrets/")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./search-aggregator.yaml or ~/.config/search-aggregator/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "logs/search-aggregator.log", "rotating log file (empty disables the file sink)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("search-aggregator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "search-aggregator"))
		}
	}

	viper.SetEnvPrefix("SEARCH_AGGREGATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-aggregator/internal/aggregate"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 10 * time.Second
	defaultOutputDir = "./output"
	defaultUserAgent = "search-aggregator/0.1"
)

// registerAggregateFlags adds the flag set shared by commands that run the
// aggregator.
func registerAggregateFlags(c *cobra.Command) {
	c.Flags().String("output-dir", defaultOutputDir, "directory for the markdown report")
	c.Flags().Bool("no-save", false, "skip appending results to the markdown report")
	c.Flags().Duration("delay", defaultDelay, "fixed pause after each engine call")
	c.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	c.Flags().Int("results", 0, "per-engine result count (overrides configured engines)")
}

// aggregatorConfig assembles the aggregator configuration from flags, the
// viper config file, and the resolved API key.
func aggregatorConfig(cmd *cobra.Command) types.AggregatorConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	noSave, _ := cmd.Flags().GetBool("no-save")
	delay, _ := cmd.Flags().GetDuration("delay")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	results, _ := cmd.Flags().GetInt("results")

	engines := aggregate.DefaultEngines()
	if viper.IsSet("engines") {
		var configured []types.EngineConfig
		if err := viper.UnmarshalKey("engines", &configured); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed engines config")
		} else if len(configured) > 0 {
			engines = configured
		}
	}
	if results > 0 {
		for i := range engines {
			engines[i].ResultCount = results
		}
	}

	return types.AggregatorConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:         apiKey,
		Engines:        engines,
		RateLimitDelay: delay,
		OutputDir:      outputDir,
		SaveToFile:     !noSave,
	}
}

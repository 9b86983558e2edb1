package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-aggregator/internal/aggregate"
	"github.com/pdiddy/search-aggregator/internal/history"
	"github.com/pdiddy/search-aggregator/internal/serpapi"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query all configured engines and aggregate the results",
	Long: `Search issues one query against every configured engine in order,
with a fixed pause between calls, and prints the combined fixed-length result
set. Results are appended to <output-dir>/search_results.md and recorded in
the run-history database unless disabled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	registerAggregateFlags(searchCmd)
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("history-dir", "history", "directory for the run-history database")
	searchCmd.Flags().Bool("no-history", false, "skip recording the run in the history database")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	cfg := aggregatorConfig(cmd)
	client := &serpapi.Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
	agg := aggregate.New(cfg, client, log)

	started := time.Now()
	out, err := agg.Aggregate(cmd.Context(), query)
	if err != nil {
		return err
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordRun(cmd, query, started, out)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return aggregate.FormatJSON(out, os.Stdout)
	}
	aggregate.FormatTable(out, os.Stdout)
	return nil
}

// recordRun stores the run in the history database. History is an
// observability supplement, so failures degrade to a warning instead of
// failing the search.
func recordRun(cmd *cobra.Command, query string, started time.Time, out types.AggregateResult) {
	historyDir, _ := cmd.Flags().GetString("history-dir")

	store, err := history.NewStore(types.HistoryConfig{Dir: historyDir})
	if err != nil {
		log.Warn().Err(err).Msg("could not open history store")
		return
	}
	defer store.Close()

	runID, err := store.RecordRun(cmd.Context(), query, started, out)
	if err != nil {
		log.Warn().Err(err).Msg("could not record run")
		return
	}
	log.Info().Int64("run_id", runID).Msg("run recorded")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-aggregator/internal/history"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded aggregation runs and inspect their results",
	Long: `History lists past aggregation runs from the SQLite run store. With a
run ID it prints that run's stored results. --export writes the full history
to YAML and JSON files next to the database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("history-dir", "history", "directory for the run-history database")
	historyCmd.Flags().Int("max-results", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().Bool("export", false, "export the run history to YAML and JSON files")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	historyDir, _ := cmd.Flags().GetString("history-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	jsonOut, _ := cmd.Flags().GetBool("json")
	export, _ := cmd.Flags().GetBool("export")

	store, err := history.NewStore(types.HistoryConfig{Dir: historyDir, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	if export {
		if err := store.ExportYAML(ctx); err != nil {
			return err
		}
		if err := store.ExportJSON(ctx); err != nil {
			return err
		}
		fmt.Printf("Exported run history to %s/export.yaml and %s/export.json\n", historyDir, historyDir)
		return nil
	}

	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}
		results, err := store.RunResults(ctx, runID)
		if err != nil {
			return err
		}
		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		printResults(results)
		return nil
	}

	runs, err := store.ListRuns(ctx, maxResults)
	if err != nil {
		return err
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	printRuns(runs)
	return nil
}

func printRuns(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return
	}

	fmt.Printf("%-6s  %-20s  %-48s  %-8s  %s\n", "ID", "Started", "Query", "Results", "Placeholders")
	fmt.Println(strings.Repeat("-", 100))
	for _, r := range runs {
		query := r.Query
		if len(query) > 48 {
			query = query[:45] + "..."
		}
		fmt.Printf("%-6d  %-20s  %-48s  %-8d  %d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), query, r.ResultCount, r.Placeholders)
	}
}

func printResults(results []types.SearchResult) {
	for i, r := range results {
		fmt.Printf("%d. %s\n", i+1, r.Title)
		if r.Link != "" {
			fmt.Printf("   %s\n", r.Link)
		}
		if r.Snippet != "" {
			fmt.Printf("   %s\n", r.Snippet)
		}
	}
	fmt.Printf("\n%d results\n", len(results))
}

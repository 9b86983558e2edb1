package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/pdiddy/search-aggregator/internal/aggregate"
	"github.com/pdiddy/search-aggregator/internal/serpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the aggregator as an MCP tool over stdio",
	Long: `Serve registers the multisearch tool on a Model Context Protocol stdio
server so an agent orchestrator can discover it by name and description and
call it with a single query string. Validation failures (empty query, missing
API key) come back as error results, not protocol errors.`,
	RunE: runServe,
}

func init() {
	registerAggregateFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := aggregatorConfig(cmd)
	client := &serpapi.Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
	agg := aggregate.New(cfg, client, log)

	s := server.NewMCPServer("search-aggregator", version)

	tool := mcp.NewTool("multisearch",
		mcp.WithDescription("Performs an internet search using multiple search engines and returns combined structured results."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query text."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := agg.Aggregate(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(out)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(data)), nil
	})

	log.Info().Msg("serving multisearch tool over stdio")
	return server.ServeStdio(s)
}

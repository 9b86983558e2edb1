// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate queries multiple search-engine backends sequentially and
// merges their hits into a fixed-length, citation-ready record set.
//
// Engines are queried strictly in configured order with a fixed pause after
// each call. A failing engine contributes zero results and never aborts the
// run; the combined list is padded (or truncated) to the sum of the
// per-engine result counts, so callers cannot tell an outage from an empty
// result set.
package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/search-aggregator/internal/report"
	"github.com/pdiddy/search-aggregator/internal/serpapi"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// Input validation errors, surfaced before any provider call is made.
var (
	ErrEmptyQuery    = errors.New("query parameter is required")
	ErrMissingAPIKey = errors.New("API key is required")
)

// Provider abstracts the search API call so tests can stub it.
type Provider interface {
	Search(ctx context.Context, p serpapi.Params) (*serpapi.Response, error)
}

// Aggregator queries each configured engine through a shared provider.
type Aggregator struct {
	cfg      types.AggregatorConfig
	provider Provider
	log      zerolog.Logger
}

// New returns an Aggregator for the given configuration. An empty engine
// list falls back to the stock four-engine set.
func New(cfg types.AggregatorConfig, provider Provider, log zerolog.Logger) *Aggregator {
	if len(cfg.Engines) == 0 {
		cfg.Engines = DefaultEngines()
	}
	return &Aggregator{cfg: cfg, provider: provider, log: log}
}

// Aggregate queries every configured engine in order and returns a combined
// record set of exactly the configured target length, plus a 1:1 citation
// list. Engine failures are logged and degrade to zero results for that
// engine. When saving is enabled the results are appended to the markdown
// report in OutputDir.
func (a *Aggregator) Aggregate(ctx context.Context, query string) (types.AggregateResult, error) {
	if strings.TrimSpace(query) == "" {
		return types.AggregateResult{}, ErrEmptyQuery
	}
	if a.cfg.APIKey == "" {
		a.log.Error().Msg("API key is missing")
		return types.AggregateResult{}, ErrMissingAPIKey
	}

	a.log.Info().Str("query", query).Msg("starting search")

	requests := buildRequests(a.cfg.Engines)
	target := targetLength(requests)

	var combined []types.SearchResult
	for _, req := range requests {
		results, err := a.searchEngine(ctx, req, query)
		if err != nil {
			a.log.Error().Err(err).Str("engine", req.Engine).Msg("failed to retrieve search results")
		} else {
			a.log.Info().Str("engine", req.Engine).Int("hits", len(results)).Msg("engine results")
			combined = append(combined, results...)
		}

		// Fixed pause after every engine call, successful or not.
		if err := sleepCtx(ctx, a.cfg.RateLimitDelay); err != nil {
			return types.AggregateResult{}, err
		}
	}

	for len(combined) < target {
		combined = append(combined, types.Placeholder())
	}
	combined = combined[:target]

	cited := make([]types.CitedSource, target)
	for i, r := range combined {
		cited[i] = types.CitedSource{Title: r.Title, URL: r.Link}
	}

	out := types.AggregateResult{SearchResults: combined, CitedSources: cited}

	if a.cfg.SaveToFile {
		if err := report.Append(a.cfg.OutputDir, out.SearchResults); err != nil {
			return types.AggregateResult{}, fmt.Errorf("saving report: %w", err)
		}
	}

	a.log.Info().Int("results", target).Msg("search completed successfully")
	return out, nil
}

// searchEngine performs one provider call and normalizes the organic results
// by best-effort field lookup.
func (a *Aggregator) searchEngine(ctx context.Context, req EngineRequest, query string) ([]types.SearchResult, error) {
	resp, err := a.provider.Search(ctx, req.params(query, a.cfg.APIKey))
	if err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(resp.OrganicResults))
	for _, hit := range resp.OrganicResults {
		results = append(results, types.SearchResult{
			Title:   hit.Title,
			Link:    hit.Link,
			Date:    hit.Date,
			Author:  hit.Author,
			Snippet: hit.Snippet,
		})
	}
	return results, nil
}

// sleepCtx pauses for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(out types.AggregateResult, w io.Writer) {
	if len(out.SearchResults) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-56s  %-44s  %s\n", "Rank", "Title", "Link", "Date")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	placeholders := 0
	for i, r := range out.SearchResults {
		if r.IsPlaceholder() {
			placeholders++
		}
		fmt.Fprintf(w, "%-4d  %-56s  %-44s  %s\n", i+1, truncate(r.Title, 56), truncate(r.Link, 44), r.Date)
	}

	fmt.Fprintf(w, "\n%d results", len(out.SearchResults))
	if placeholders > 0 {
		fmt.Fprintf(w, " (%d placeholders)", placeholders)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the aggregate result as indented JSON to w.
func FormatJSON(out types.AggregateResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"github.com/pdiddy/search-aggregator/internal/serpapi"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// Provider-side engine identifiers for the stock backend set.
const (
	EngineGoogle     = "google"
	EngineBing       = "bing"
	EngineDuckDuckGo = "duckduckgo"
	EngineYahoo      = "yahoo"
)

const defaultResultCount = 10

// DefaultEngines returns the stock backend set: google and bing use the
// generic "q" query field, duckduckgo adds a region code, and yahoo expects
// "p" instead of "q". Each engine's result count is tunable independently.
func DefaultEngines() []types.EngineConfig {
	return []types.EngineConfig{
		{Name: EngineGoogle, ResultCount: defaultResultCount},
		{Name: EngineBing, ResultCount: defaultResultCount},
		{Name: EngineDuckDuckGo, ResultCount: defaultResultCount, ExtraParams: map[string]string{"kl": "us-en"}},
		{Name: EngineYahoo, QueryField: "p", ResultCount: defaultResultCount},
	}
}

// EngineRequest is one fully resolved backend query, built once per
// invocation from an EngineConfig and immutable afterwards.
type EngineRequest struct {
	Engine      string
	QueryField  string
	ExtraParams map[string]string
	ResultCount int
}

// buildRequests resolves engine configs into concrete requests, filling in
// the default query field and result count where unset.
func buildRequests(engines []types.EngineConfig) []EngineRequest {
	requests := make([]EngineRequest, 0, len(engines))
	for _, e := range engines {
		r := EngineRequest{
			Engine:      e.Name,
			QueryField:  e.QueryField,
			ExtraParams: e.ExtraParams,
			ResultCount: e.ResultCount,
		}
		if r.QueryField == "" {
			r.QueryField = "q"
		}
		if r.ResultCount <= 0 {
			r.ResultCount = defaultResultCount
		}
		requests = append(requests, r)
	}
	return requests
}

// targetLength is the fixed size of the combined result list: the sum of the
// per-engine result counts, known before any call is made.
func targetLength(requests []EngineRequest) int {
	total := 0
	for _, r := range requests {
		total += r.ResultCount
	}
	return total
}

// params converts the request into provider call parameters.
func (r EngineRequest) params(query, apiKey string) serpapi.Params {
	return serpapi.Params{
		Engine:      r.Engine,
		QueryField:  r.QueryField,
		Query:       query,
		APIKey:      apiKey,
		ResultCount: r.ResultCount,
		Extra:       r.ExtraParams,
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package serpapi is a minimal client for the SerpAPI search endpoint.
// One endpoint serves every engine; the engine identifier and query field
// travel as request parameters.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// apiBase is the SerpAPI search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://serpapi.com/search.json"

// Params holds one engine query.
type Params struct {
	// Engine is the provider-side engine identifier ("google", "bing", ...).
	Engine string

	// QueryField is the parameter name carrying the query text. Empty
	// defaults to "q".
	QueryField string

	// Query is the search text.
	Query string

	// APIKey authenticates the request.
	APIKey string

	// ResultCount is the number of results requested.
	ResultCount int

	// Extra holds additional engine-specific parameters (e.g. "kl" for a
	// duckduckgo region code).
	Extra map[string]string
}

// OrganicResult is one hit from the provider's organic results list. Only
// the fields the aggregator consumes are decoded; the rest of the upstream
// payload is ignored, and missing fields decode to empty strings.
type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Snippet string `json:"snippet"`
}

// Response is the subset of the provider payload the aggregator reads.
type Response struct {
	OrganicResults []OrganicResult `json:"organic_results"`
}

// Client issues search requests against SerpAPI.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// Search performs one engine query and returns the decoded response.
func (c *Client) Search(ctx context.Context, p Params) (*Response, error) {
	if p.Engine == "" {
		return nil, fmt.Errorf("engine identifier is required")
	}

	queryField := p.QueryField
	if queryField == "" {
		queryField = "q"
	}

	values := url.Values{
		"engine":   {p.Engine},
		queryField: {p.Query},
		"api_key":  {p.APIKey},
		"num":      {strconv.Itoa(p.ResultCount)},
	}
	for k, v := range p.Extra {
		values.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SerpAPI request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpAPI returned HTTP %d for engine %s", resp.StatusCode, p.Engine)
	}

	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing SerpAPI response: %w", err)
	}
	return &r, nil
}

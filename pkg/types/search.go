// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search aggregator.
package types

// PlaceholderTitle marks a padding record appended when the engines returned
// fewer hits than the configured target length.
const PlaceholderTitle = "No additional results"

// SearchResult is one normalized hit from a search-engine backend. Fields
// the backend did not supply are empty strings; absence is not an error.
type SearchResult struct {
	// Title is the hit title as returned by the engine.
	Title string `json:"title" yaml:"title"`

	// Link is the hit URL.
	Link string `json:"link" yaml:"link"`

	// Date is the publication date string as returned by the engine.
	Date string `json:"date" yaml:"date"`

	// Author is the author or byline string, when the engine provides one.
	Author string `json:"author" yaml:"author"`

	// Snippet is the short excerpt shown under the hit.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Placeholder returns the padding record used to fill the combined result
// list out to its fixed target length.
func Placeholder() SearchResult {
	return SearchResult{Title: PlaceholderTitle, Link: "", Snippet: ""}
}

// IsPlaceholder reports whether the result is a padding record rather than
// an engine hit.
func (r SearchResult) IsPlaceholder() bool {
	return r.Title == PlaceholderTitle && r.Link == ""
}

// CitedSource is the citation view of a search result.
type CitedSource struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// AggregateResult is the combined output of one aggregation run.
// SearchResults always has exactly the configured target length (the sum of
// the per-engine result counts), padded or truncated as needed, and
// CitedSources maps 1:1 onto it.
type AggregateResult struct {
	SearchResults []SearchResult `json:"search_results" yaml:"search_results"`
	CitedSources  []CitedSource  `json:"cited_sources" yaml:"cited_sources"`
}

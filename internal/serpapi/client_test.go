// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package serpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestServer points apiBase at an httptest server for the duration of
// the test.
func withTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	old := apiBase
	apiBase = ts.URL
	t.Cleanup(func() {
		apiBase = old
		ts.Close()
	})
	return ts
}

func TestSearchDecodesOrganicResults(t *testing.T) {
	var gotQuery url.Values
	ts := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"search_metadata": {"status": "Success"},
			"organic_results": [
				{"title": "Rust vs Go", "link": "https://example.com/1", "date": "Jan 3, 2026", "author": "A. Writer", "snippet": "A comparison."},
				{"title": "Only a title"}
			]
		}`)
	})

	c := &Client{HTTP: ts.Client(), UserAgent: "test/0.1"}
	resp, err := c.Search(context.Background(), Params{
		Engine:      "google",
		Query:       "rust vs go performance",
		APIKey:      "key123",
		ResultCount: 10,
	})
	require.NoError(t, err)
	require.Len(t, resp.OrganicResults, 2)

	assert.Equal(t, "Rust vs Go", resp.OrganicResults[0].Title)
	assert.Equal(t, "https://example.com/1", resp.OrganicResults[0].Link)
	assert.Equal(t, "Jan 3, 2026", resp.OrganicResults[0].Date)
	assert.Equal(t, "A. Writer", resp.OrganicResults[0].Author)
	assert.Equal(t, "A comparison.", resp.OrganicResults[0].Snippet)

	// Absent fields decode to empty strings, not errors.
	assert.Equal(t, "Only a title", resp.OrganicResults[1].Title)
	assert.Empty(t, resp.OrganicResults[1].Link)
	assert.Empty(t, resp.OrganicResults[1].Snippet)

	assert.Equal(t, "google", gotQuery.Get("engine"))
	assert.Equal(t, "rust vs go performance", gotQuery.Get("q"))
	assert.Equal(t, "key123", gotQuery.Get("api_key"))
	assert.Equal(t, "10", gotQuery.Get("num"))
}

func TestSearchAlternateQueryField(t *testing.T) {
	var gotQuery url.Values
	ts := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"organic_results": []}`)
	})

	c := &Client{HTTP: ts.Client()}
	_, err := c.Search(context.Background(), Params{
		Engine:     "yahoo",
		QueryField: "p",
		Query:      "rust vs go performance",
		APIKey:     "key123",
	})
	require.NoError(t, err)

	assert.Equal(t, "rust vs go performance", gotQuery.Get("p"))
	assert.Empty(t, gotQuery.Get("q"))
}

func TestSearchExtraParams(t *testing.T) {
	var gotQuery url.Values
	ts := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"organic_results": []}`)
	})

	c := &Client{HTTP: ts.Client()}
	_, err := c.Search(context.Background(), Params{
		Engine: "duckduckgo",
		Query:  "rust vs go performance",
		APIKey: "key123",
		Extra:  map[string]string{"kl": "us-en"},
	})
	require.NoError(t, err)

	assert.Equal(t, "us-en", gotQuery.Get("kl"))
}

func TestSearchNon200(t *testing.T) {
	ts := withTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := &Client{HTTP: ts.Client()}
	_, err := c.Search(context.Background(), Params{Engine: "google", Query: "q", APIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestSearchMalformedResponse(t *testing.T) {
	ts := withTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"organic_results": [`)
	})

	c := &Client{HTTP: ts.Client()}
	_, err := c.Search(context.Background(), Params{Engine: "google", Query: "q", APIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing SerpAPI response")
}

func TestSearchMissingEngine(t *testing.T) {
	called := false
	withTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	c := &Client{}
	_, err := c.Search(context.Background(), Params{Query: "q", APIKey: "k"})
	require.Error(t, err)
	assert.False(t, called, "no request should be made without an engine")
}

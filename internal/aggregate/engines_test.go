package aggregate

import (
	"testing"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

func TestDefaultEngines(t *testing.T) {
	engines := DefaultEngines()
	if len(engines) != 4 {
		t.Fatalf("len(engines) = %d, want 4", len(engines))
	}

	byName := make(map[string]types.EngineConfig)
	for _, e := range engines {
		byName[e.Name] = e
		if e.ResultCount != defaultResultCount {
			t.Errorf("%s result count = %d, want %d", e.Name, e.ResultCount, defaultResultCount)
		}
	}

	if byName[EngineYahoo].QueryField != "p" {
		t.Errorf("yahoo query field = %q, want %q", byName[EngineYahoo].QueryField, "p")
	}
	if byName[EngineDuckDuckGo].ExtraParams["kl"] != "us-en" {
		t.Errorf("duckduckgo kl = %q, want %q", byName[EngineDuckDuckGo].ExtraParams["kl"], "us-en")
	}
	if byName[EngineGoogle].QueryField != "" || byName[EngineBing].QueryField != "" {
		t.Error("google and bing should use the default query field")
	}
}

func TestBuildRequestsDefaults(t *testing.T) {
	requests := buildRequests([]types.EngineConfig{
		{Name: "custom"},
		{Name: EngineYahoo, QueryField: "p", ResultCount: 5},
	})

	if requests[0].QueryField != "q" {
		t.Errorf("default query field = %q, want %q", requests[0].QueryField, "q")
	}
	if requests[0].ResultCount != defaultResultCount {
		t.Errorf("default result count = %d, want %d", requests[0].ResultCount, defaultResultCount)
	}
	if requests[1].QueryField != "p" || requests[1].ResultCount != 5 {
		t.Errorf("configured request mangled: %+v", requests[1])
	}
}

func TestTargetLength(t *testing.T) {
	tests := []struct {
		name    string
		engines []types.EngineConfig
		want    int
	}{
		{"stock set", DefaultEngines(), 40},
		{"mixed counts", []types.EngineConfig{{Name: "a", ResultCount: 3}, {Name: "b", ResultCount: 7}}, 10},
		{"defaulted counts", []types.EngineConfig{{Name: "a"}, {Name: "b"}}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetLength(buildRequests(tt.engines)); got != tt.want {
				t.Errorf("targetLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEngineRequestParams(t *testing.T) {
	req := EngineRequest{
		Engine:      EngineDuckDuckGo,
		QueryField:  "q",
		ExtraParams: map[string]string{"kl": "us-en"},
		ResultCount: 10,
	}

	p := req.params("rust vs go performance", "key123")
	if p.Engine != EngineDuckDuckGo {
		t.Errorf("engine = %q", p.Engine)
	}
	if p.Query != "rust vs go performance" || p.QueryField != "q" {
		t.Errorf("query = %q via %q", p.Query, p.QueryField)
	}
	if p.APIKey != "key123" {
		t.Errorf("api key = %q", p.APIKey)
	}
	if p.ResultCount != 10 {
		t.Errorf("result count = %d", p.ResultCount)
	}
	if p.Extra["kl"] != "us-en" {
		t.Errorf("extra params = %v", p.Extra)
	}
}

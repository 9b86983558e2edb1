package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "search-aggregator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig describes one search-engine backend queried through the
// shared provider. The mapstructure tags let viper unmarshal the engines
// list from the config file.
type EngineConfig struct {
	// Name is the provider-side engine identifier (e.g. "google", "yahoo").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// QueryField is the parameter name the engine expects for the query
	// text. Most engines use "q"; yahoo uses "p". Empty defaults to "q".
	QueryField string `json:"query_field,omitempty" yaml:"query_field,omitempty" mapstructure:"query_field"`

	// ResultCount is the number of results requested from this engine
	// (default 10).
	ResultCount int `json:"result_count" yaml:"result_count" mapstructure:"result_count"`

	// ExtraParams holds additional engine-specific query parameters, such
	// as a locale region code.
	ExtraParams map[string]string `json:"extra_params,omitempty" yaml:"extra_params,omitempty" mapstructure:"extra_params"`
}

// AggregatorConfig holds settings for one aggregation run. The credential is
// carried here explicitly rather than read from process environment inside
// the aggregator.
type AggregatorConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the search-provider credential. Aggregation fails before
	// any provider call when it is empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Engines lists the backends to query, in order. Empty uses the stock
	// four-engine set.
	Engines []EngineConfig `json:"engines,omitempty" yaml:"engines,omitempty"`

	// RateLimitDelay is the fixed pause after each engine call (default 10s).
	// It is a crude quota guard, not an adaptive limiter.
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay"`

	// OutputDir is the directory holding the markdown report (default "./output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SaveToFile controls whether results are appended to the markdown report.
	SaveToFile bool `json:"save_to_file" yaml:"save_to_file"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory holding the SQLite database and export files.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

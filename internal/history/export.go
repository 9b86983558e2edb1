// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

// ExportEntry couples a run with its stored results for export.
type ExportEntry struct {
	Run     Run                  `json:"run" yaml:"run"`
	Results []types.SearchResult `json:"results" yaml:"results"`
}

const exportLimit = 100000

// ExportYAML writes the full run history to <dir>/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the full run history to <dir>/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "export.json"), data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	runs, err := s.ListRuns(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying runs for export: %w", err)
	}

	entries := make([]ExportEntry, 0, len(runs))
	for _, run := range runs {
		results, err := s.RunResults(ctx, run.ID)
		if err != nil {
			return nil, fmt.Errorf("querying results for run %d: %w", run.ID, err)
		}
		entries = append(entries, ExportEntry{Run: run, Results: results})
	}
	return entries, nil
}

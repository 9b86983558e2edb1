// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders aggregated search results into an append-only
// markdown file for later inspection.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

// FileName is the fixed report filename inside the output directory.
const FileName = "search_results.md"

// Path returns the report file location for an output directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Append writes one block per result followed by a separator line to
// <dir>/search_results.md, creating dir if needed. The file is opened in
// append mode and never truncated, so repeated invocations accumulate one
// block group each.
func Append(dir string, results []types.SearchResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(Path(dir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, r := range results {
		writeBlock(&b, r)
	}
	b.WriteString("\n---\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}

// writeBlock renders one result. Missing date and author render as "N/A".
func writeBlock(b *strings.Builder, r types.SearchResult) {
	fmt.Fprintf(b, "### %s\n", r.Title)
	fmt.Fprintf(b, "[Link](%s)\n", r.Link)
	fmt.Fprintf(b, "%s\n", r.Snippet)
	fmt.Fprintf(b, "**Date:** %s\n", orNA(r.Date))
	fmt.Fprintf(b, "**Author:** %s\n\n", orNA(r.Author))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the search-provider credential from a directory of
// plain-text files. The filename is the key name and the file contents
// (trimmed) are the value.
//
// Supported key files: serpapi-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// APIKeyFile is the secrets-directory filename holding the SerpAPI key.
const APIKeyFile = "serpapi-api-key"

// Load reads every regular file in dir and returns a map of filename to
// trimmed contents. A missing directory is not an error; Load returns an
// empty map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			loaded[name] = value
		}
	}

	return loaded, nil
}

// APIKey returns the SerpAPI key from dir, or "" when the directory or key
// file is absent.
func APIKey(dir string) string {
	loaded, err := Load(dir)
	if err != nil {
		return ""
	}
	return loaded[APIKeyFile]
}

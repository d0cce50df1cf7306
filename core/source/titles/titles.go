// Package titles reads and writes raw title-list snapshots (JSON arrays) in
// the raw data directory.
package titles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a titles snapshot as an indented JSON array.
func Save(path string, titles []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(titles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Load reads a titles snapshot.
func Load(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read titles snapshot: %w", err)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}

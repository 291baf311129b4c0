// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Package cache assembles the on disk font cache artifact consumed by the
// text rendering layer.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kovidgoyal/fontcache/fontconfig"
	"github.com/kovidgoyal/fontcache/utils"
)

var _ = fmt.Print

// Document is the cache artifact: the normalized font entries plus whatever
// companion metadata the consumer expects, passed through unchanged.
type Document struct {
	Entries  []fontconfig.FontEntry `json:"entries"`
	Metadata map[string]any         `json:"metadata"`
}

// LoadMetadata reads the companion metadata (for example default family
// substitution rules) from a YAML file. An empty path yields an empty map.
func LoadMetadata(path string) (map[string]any, error) {
	ans := map[string]any{}
	if path == "" {
		return ans, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &ans); err != nil {
		return nil, fmt.Errorf("parsing metadata file %s: %w", path, err)
	}
	return ans, nil
}

// DefaultPath is the platform determined location of the font cache.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("determining cache directory: %w", err)
	}
	return filepath.Join(base, "fontcache", "fonts.json"), nil
}

// Write serializes the document as indented JSON and atomically replaces
// path with it. The previous cache survives intact if anything fails before
// the final rename.
func (self Document) Write(path string) error {
	if self.Entries == nil {
		self.Entries = []fontconfig.FontEntry{}
	}
	if self.Metadata == nil {
		self.Metadata = map[string]any{}
	}
	data, err := json.MarshalIndent(self, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return utils.AtomicWriteFile(path, data, 0o644)
}

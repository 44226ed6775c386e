// Package file reads store directories from JSON or YAML files.
//
// Both formats share the stores.json shape:
//
//	{"stores": [{"storeId": "...", "storeName": "...", "aliases": ["..."]}]}
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/storeq/storeq/internal/data"
	"github.com/storeq/storeq/internal/directory"
)

// Source reads records from a stores file. The format is picked from the
// extension: .yaml/.yml decode as YAML, everything else as JSON.
type Source struct {
	Path string
}

// New returns a file Source for path.
func New(path string) *Source {
	return &Source{Path: path}
}

type storesDoc struct {
	Stores []storeEntry `json:"stores" yaml:"stores"`
}

type storeEntry struct {
	StoreID   string   `json:"storeId" yaml:"storeId"`
	StoreName string   `json:"storeName" yaml:"storeName"`
	Aliases   []string `json:"aliases" yaml:"aliases"`
}

// Fetch reads and validates the file. Unreadable or malformed content
// (including a non-string alias entry) is a *data.ConfigError.
func (s *Source) Fetch(ctx context.Context) ([]directory.Record, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &data.ConfigError{Source: s.Path, Reason: "unreadable", Err: err}
	}

	var doc storesDoc
	switch ext := strings.ToLower(filepath.Ext(s.Path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, &data.ConfigError{Source: s.Path, Reason: "invalid YAML", Err: err}
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, &data.ConfigError{Source: s.Path, Reason: "invalid JSON", Err: err}
		}
	}

	records := make([]directory.Record, 0, len(doc.Stores))
	for _, e := range doc.Stores {
		records = append(records, directory.Record{
			StoreID:   e.StoreID,
			StoreName: e.StoreName,
			Aliases:   e.Aliases,
		})
	}
	if err := data.Validate(s.Path, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Close is a no-op; the file is read whole in Fetch.
func (s *Source) Close() error {
	return nil
}

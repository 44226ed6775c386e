// Package fixtures provides shared test store directories.
package fixtures

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/storeq/storeq/internal/data/sqlite"
)

//go:embed stores.json
var storesJSON []byte

// CreateStoresJSON writes the sample stores.json to a temp dir and returns
// its path. The file is removed with the test's temp dir.
func CreateStoresJSON(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stores.json")
	if err := os.WriteFile(path, storesJSON, 0o644); err != nil {
		t.Fatalf("write stores.json: %v", err)
	}
	return path
}

// CreateStoresDB creates a temp SQLite store directory with the sample
// stores applied and returns its path.
func CreateStoresDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stores.db")
	if err := sqlite.Init(path); err != nil {
		t.Fatalf("init stores db: %v", err)
	}
	return path
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStoresJSON(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stores.json")
	content := `{"stores": [
		{"storeId": "store_123", "storeName": "Acme Store", "aliases": ["acme", "acme store"]},
		{"storeId": "store_456", "storeName": "Example Shop", "aliases": ["example shop"]}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		cfgStoresPath = ""
		cfgFormat = ""
		cfgVerbose = false
		flagStoreID = ""
		flagStoreName = ""
		flagStrictName = false
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCLI_ResolveExplicitID(t *testing.T) {
	stores := writeStoresJSON(t)
	out := execute(t, "--stores", stores, "--format", "json", "resolve", "--store-id", "store_999")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "store_999", doc["storeId"])
	require.Equal(t, "explicit_id", doc["matchedVia"])
}

func TestCLI_ResolveQuestion(t *testing.T) {
	stores := writeStoresJSON(t)
	out := execute(t, "--stores", stores, "--format", "json", "resolve",
		"What's", "the", "interaction", "rate", "for", "Acme", "Store?")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "store_123", doc["storeId"])
	require.Equal(t, "extracted_text", doc["matchedVia"])
	require.NotNil(t, doc["filter"])
}

func TestCLI_ResolveUnresolved(t *testing.T) {
	stores := writeStoresJSON(t)
	out := execute(t, "--stores", stores, "--format", "json", "resolve", "show", "overall", "totals")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "none", doc["matchedVia"])
	require.NotContains(t, doc, "storeId")
	require.NotContains(t, doc, "filter")
}

func TestCLI_ResolveMissingConfigStillRuns(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	out := execute(t, "--stores", missing, "--format", "json", "resolve", "--store-name", "Acme Store")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "none", doc["matchedVia"], "empty directory means no filter, not a crash")
}

func TestCLI_StoresList(t *testing.T) {
	stores := writeStoresJSON(t)
	out := execute(t, "--stores", stores, "stores", "list")
	require.Contains(t, out, "store_123")
	require.Contains(t, out, "Example Shop")
}

func TestCLI_StoresFind(t *testing.T) {
	stores := writeStoresJSON(t)
	out := execute(t, "--stores", stores, "stores", "find", "acme")
	require.Contains(t, out, "store_123")
	require.NotContains(t, out, "store_456")
}

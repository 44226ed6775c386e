package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
)

// AliasEntry is one row for alias import files.
type AliasEntry struct {
	Alias string `json:"alias"`
	Store string `json:"store"` // storeId or storeName
}

// LoadAliasesFromFile reads a JSON file of alias -> store pairs and inserts
// them into store_aliases. Store is resolved against stores by store_id,
// then by store_name (case-insensitive).
// Format: [{"alias": "acme", "store": "Acme Store"}, ...]
// Entries whose store is not found are skipped.
func LoadAliasesFromFile(ctx context.Context, db *sql.DB, path string) (loaded, skipped int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	var entries []AliasEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, 0, err
	}
	for _, e := range entries {
		if e.Alias == "" || e.Store == "" {
			skipped++
			continue
		}
		var storePK int64
		err := db.QueryRowContext(ctx, "SELECT id FROM stores WHERE store_id = ? LIMIT 1", e.Store).Scan(&storePK)
		if err == sql.ErrNoRows {
			err = db.QueryRowContext(ctx, "SELECT id FROM stores WHERE LOWER(store_name) = LOWER(?) LIMIT 1", e.Store).Scan(&storePK)
		}
		if err == sql.ErrNoRows {
			skipped++
			continue
		}
		if err != nil {
			return loaded, skipped, err
		}
		_, err = db.ExecContext(ctx, "INSERT INTO store_aliases (store_pk, alias) VALUES (?, ?)", storePK, e.Alias)
		if err != nil {
			return loaded, skipped, err
		}
		loaded++
	}
	return loaded, skipped, nil
}

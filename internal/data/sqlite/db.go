package sqlite

import (
	"context"
	"database/sql"

	"github.com/storeq/storeq/internal/data"
	"github.com/storeq/storeq/internal/directory"

	_ "modernc.org/sqlite"
)

// DB implements data.Source over a SQLite store directory.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the SQLite database at path (file path or ":memory:").
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &data.ConfigError{Source: path, Reason: "unreadable", Err: err}
	}
	return &DB{conn: conn, path: path}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DB returns the underlying *sql.DB (used by Init and tests).
func (db *DB) DB() *sql.DB {
	return db.conn
}

// Fetch reads every store with its aliases. Load order is insertion order
// (stores.id); alias order within a store is insertion order too.
func (db *DB) Fetch(ctx context.Context) ([]directory.Record, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT id, store_id, store_name FROM stores ORDER BY id")
	if err != nil {
		return nil, &data.ConfigError{Source: db.path, Reason: "query stores", Err: err}
	}
	defer rows.Close()

	var records []directory.Record
	var pks []int64
	for rows.Next() {
		var pk int64
		var r directory.Record
		if err := rows.Scan(&pk, &r.StoreID, &r.StoreName); err != nil {
			return nil, &data.ConfigError{Source: db.path, Reason: "scan stores", Err: err}
		}
		records = append(records, r)
		pks = append(pks, pk)
	}
	if err := rows.Err(); err != nil {
		return nil, &data.ConfigError{Source: db.path, Reason: "read stores", Err: err}
	}

	for i, pk := range pks {
		aliases, err := db.fetchAliases(ctx, pk)
		if err != nil {
			return nil, err
		}
		records[i].Aliases = aliases
	}

	if err := data.Validate(db.path, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (db *DB) fetchAliases(ctx context.Context, storePK int64) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT alias FROM store_aliases WHERE store_pk = ? ORDER BY id", storePK)
	if err != nil {
		return nil, &data.ConfigError{Source: db.path, Reason: "query aliases", Err: err}
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, &data.ConfigError{Source: db.path, Reason: "scan aliases", Err: err}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &data.ConfigError{Source: db.path, Reason: "read aliases", Err: err}
	}
	return out, nil
}

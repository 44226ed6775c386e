// Package data loads store directory records from configuration sources.
package data

import (
	"context"
	"fmt"

	"github.com/storeq/storeq/internal/directory"
)

// Source fetches the full set of store records from a configuration backend.
type Source interface {
	Fetch(ctx context.Context) ([]directory.Record, error)
	Close() error
}

// ConfigError reports an unreadable or structurally invalid directory source.
// Callers recover by falling back to an empty directory; a bad stores config
// must never take down the request pipeline.
type ConfigError struct {
	Source string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stores config %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("stores config %s: %s", e.Source, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks the schema rules every record must satisfy: storeId and
// storeName present and non-empty. Non-string alias entries are rejected at
// decode time by the individual sources.
func Validate(source string, records []directory.Record) error {
	for i, r := range records {
		if r.StoreID == "" {
			return &ConfigError{Source: source, Reason: fmt.Sprintf("record %d: missing storeId", i)}
		}
		if r.StoreName == "" {
			return &ConfigError{Source: source, Reason: fmt.Sprintf("record %d: missing storeName", i)}
		}
	}
	return nil
}

// Load fetches records from src and builds the directory index. On error the
// caller logs and continues with directory.New(nil) — an empty directory
// means "no store configured", never a crash.
func Load(ctx context.Context, src Source) (*directory.Directory, error) {
	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return directory.New(records), nil
}

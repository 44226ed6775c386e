// Package formatter renders store records and resolution results for the CLI.
package formatter

import (
	"fmt"

	"github.com/storeq/storeq/internal/directory"
	"github.com/storeq/storeq/internal/resolver"
)

// OutputFormat selects output style.
type OutputFormat int

const (
	FormatTable OutputFormat = iota
	FormatJSON
	FormatCSV
)

// ParseFormat maps a --format flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatTable, fmt.Errorf("unknown format %q (table, json, csv)", s)
	}
}

// Stores renders a list of store records.
func Stores(records []*directory.Record, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return storesJSON(records)
	case FormatCSV:
		return storesCSV(records)
	default:
		return storesTable(records), nil
	}
}

// Resolution renders a resolution result together with the filter fragment it
// contributes downstream.
func Resolution(res resolver.Result, format OutputFormat) (string, error) {
	if format == FormatJSON {
		return resolutionJSON(res)
	}
	return resolutionText(res), nil
}

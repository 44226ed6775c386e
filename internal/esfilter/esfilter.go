// Package esfilter builds the Elasticsearch term-filter fragment a
// resolution result contributes to downstream query construction.
package esfilter

import "github.com/storeq/storeq/internal/resolver"

// StoreTerm returns the {"term": {"storeId.keyword": <id>}} fragment for a
// resolved result. ok is false when no store filter applies.
func StoreTerm(res resolver.Result) (map[string]any, bool) {
	if !res.Resolved() {
		return nil, false
	}
	return map[string]any{
		"term": map[string]any{
			"storeId.keyword": res.StoreID,
		},
	}, true
}

// Append adds the store term to a bool-filter list when resolved; otherwise
// it returns filters unchanged, meaning "query across all stores".
func Append(filters []map[string]any, res resolver.Result) []map[string]any {
	if f, ok := StoreTerm(res); ok {
		return append(filters, f)
	}
	return filters
}

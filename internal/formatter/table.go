package formatter

import (
	"fmt"
	"strings"

	"github.com/storeq/storeq/internal/directory"
	"github.com/storeq/storeq/internal/resolver"
)

func storesTable(records []*directory.Record) string {
	if len(records) == 0 {
		return "No stores configured."
	}
	var b strings.Builder
	b.WriteString("STORE_ID        | NAME                 | ALIASES\n")
	b.WriteString("----------------+----------------------+--------------------\n")
	for _, r := range records {
		id := truncate(r.StoreID, 15)
		name := truncate(r.StoreName, 20)
		fmt.Fprintf(&b, "%-15s | %-20s | %s\n", id, name, strings.Join(r.Aliases, ", "))
	}
	return b.String()
}

func resolutionText(res resolver.Result) string {
	if !res.Resolved() {
		return "No store filter (via: none)."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Store: %s (via: %s)", res.StoreID, res.Via)
	if res.MatchedName != "" {
		fmt.Fprintf(&b, " matched %q", res.MatchedName)
	}
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

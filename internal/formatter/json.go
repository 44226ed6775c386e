package formatter

import (
	"encoding/json"

	"github.com/storeq/storeq/internal/directory"
	"github.com/storeq/storeq/internal/esfilter"
	"github.com/storeq/storeq/internal/resolver"
)

func storesJSON(records []*directory.Record) (string, error) {
	out := map[string]interface{}{"stores": records}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func resolutionJSON(res resolver.Result) (string, error) {
	out := map[string]interface{}{
		"matchedVia": res.Via.String(),
	}
	if res.Resolved() {
		out["storeId"] = res.StoreID
	}
	if res.MatchedName != "" {
		out["matchedName"] = res.MatchedName
	}
	if f, ok := esfilter.StoreTerm(res); ok {
		out["filter"] = f
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

package formatter

import (
	"encoding/csv"
	"strings"

	"github.com/storeq/storeq/internal/directory"
)

func storesCSV(records []*directory.Record) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"store_id", "store_name", "aliases"})
	for _, r := range records {
		w.Write([]string{r.StoreID, r.StoreName, strings.Join(r.Aliases, ";")})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeq/storeq/internal/data/file"
	"github.com/storeq/storeq/internal/data/sqlite"
)

func TestCreateStoresJSON(t *testing.T) {
	path := CreateStoresJSON(t)
	records, err := file.New(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestCreateStoresDB(t *testing.T) {
	path := CreateStoresDB(t)
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db.Close()

	records, err := db.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestFixtureSourcesAgree(t *testing.T) {
	ctx := context.Background()

	jsonRecords, err := file.New(CreateStoresJSON(t)).Fetch(ctx)
	require.NoError(t, err)

	db, err := sqlite.Open(CreateStoresDB(t))
	require.NoError(t, err)
	defer db.Close()
	dbRecords, err := db.Fetch(ctx)
	require.NoError(t, err)

	require.Equal(t, jsonRecords, dbRecords, "both fixtures describe the same directory")
}

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeq/storeq/internal/directory"
)

func testDir() *directory.Directory {
	return directory.New([]directory.Record{
		{StoreID: "store_123", StoreName: "Acme Store", Aliases: []string{"acme", "acme store"}},
		{StoreID: "store_456", StoreName: "Example Shop", Aliases: []string{"example shop"}},
		{StoreID: "store_789", StoreName: "Lotus Boutique", Aliases: []string{"lotus"}},
	})
}

func TestResolve_ExactName(t *testing.T) {
	m := New(testDir())
	for _, r := range testDir().All() {
		got := m.Resolve(r.StoreName, true)
		require.NotNil(t, got, "every storeName resolves to its own record")
		require.Equal(t, r.StoreID, got.StoreID)
	}
}

func TestResolve_Alias(t *testing.T) {
	m := New(testDir())
	got := m.Resolve("lotus", true)
	require.NotNil(t, got)
	require.Equal(t, "store_789", got.StoreID)
}

func TestResolve_NormalizesInput(t *testing.T) {
	m := New(testDir())
	a := m.Resolve(" AcMe sToRe ", true)
	b := m.Resolve("acme store", true)
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.Equal(t, b.StoreID, a.StoreID)
}

func TestResolve_PartialRequiresFuzzy(t *testing.T) {
	m := New(testDir())

	got := m.Resolve("example", true)
	require.NotNil(t, got, "partial match against 'Example Shop'")
	require.Equal(t, "store_456", got.StoreID)

	require.Nil(t, m.Resolve("example", false), "tier 3 disabled without fuzzy")
}

func TestResolve_PartialLoadOrderWins(t *testing.T) {
	d := directory.New([]directory.Record{
		{StoreID: "first", StoreName: "Alpha Market"},
		{StoreID: "second", StoreName: "Beta Market"},
	})
	got := New(d).Resolve("market", true)
	require.NotNil(t, got)
	require.Equal(t, "first", got.StoreID)
}

func TestResolve_Unresolved(t *testing.T) {
	m := New(testDir())
	require.Nil(t, m.Resolve("nonexistent megamart", true))
	require.Nil(t, m.Resolve("", true))
	require.Nil(t, m.Resolve("   ", true))
}

func TestResolve_EmptyDirectory(t *testing.T) {
	m := New(directory.New(nil))
	require.Nil(t, m.Resolve("acme", true))
}

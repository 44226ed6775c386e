package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeq/storeq/internal/directory"
)

func testDir() *directory.Directory {
	return directory.New([]directory.Record{
		{StoreID: "store_123", StoreName: "Acme Store", Aliases: []string{"acme", "acme store"}},
		{StoreID: "store_456", StoreName: "Example Shop", Aliases: []string{"example shop"}},
	})
}

func TestPreposition_For(t *testing.T) {
	c, ok := Preposition("for").Extract("What's the interaction rate for Acme Store?")
	require.True(t, ok)
	require.Equal(t, "Acme Store", c)
}

func TestPreposition_StopsAtSentenceEnd(t *testing.T) {
	c, ok := Preposition("for").Extract("Show trends for Acme Store. Then break down by week.")
	require.True(t, ok)
	require.Equal(t, "Acme Store", c)
}

func TestPreposition_In(t *testing.T) {
	c, ok := Preposition("in").Extract("How many sessions in Example Shop")
	require.True(t, ok)
	require.Equal(t, "Example Shop", c)
}

func TestPreposition_NoMatch(t *testing.T) {
	_, ok := Preposition("for").Extract("Show me everything")
	require.False(t, ok)
}

func TestDirectoryScan_FindsKnownName(t *testing.T) {
	s := &DirectoryScan{Dir: testDir()}
	c, ok := s.Extract("Did acme store convert better last week")
	require.True(t, ok)
	require.Equal(t, "Acme Store", c)
}

func TestDirectoryScan_LongestEntryFirst(t *testing.T) {
	// "acme" alias must not shadow the longer "acme store".
	d := directory.New([]directory.Record{
		{StoreID: "a", StoreName: "Acme", Aliases: nil},
		{StoreID: "b", StoreName: "Acme Store Deluxe", Aliases: nil},
	})
	s := &DirectoryScan{Dir: d}
	c, ok := s.Extract("numbers for acme store deluxe please")
	require.True(t, ok)
	require.Equal(t, "Acme Store Deluxe", c)
}

func TestExtractor_Priority(t *testing.T) {
	e := New(testDir())

	// "for" beats the directory scan even when both would match.
	c, ok := e.Extract("Conversion for Example Shop where acme appears too.")
	require.True(t, ok)
	require.Equal(t, "Example Shop where acme appears too", c,
		"preposition capture runs to sentence end; matcher re-validation trims the noise")

	// No preposition: falls through to the directory scan.
	c, ok = e.Extract("Is acme doing well")
	require.True(t, ok)
	require.Equal(t, "Acme Store", c)
}

func TestExtractor_NoCandidate(t *testing.T) {
	e := New(testDir())
	_, ok := e.Extract("Show me overall totals")
	require.False(t, ok)
	_, ok = e.Extract("")
	require.False(t, ok)
	_, ok = e.Extract("   ")
	require.False(t, ok)
}

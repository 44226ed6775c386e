// Package matcher resolves free-text store names against a directory using a
// three-tier strategy: exact name, alias, then substring containment.
package matcher

import (
	"strings"

	"github.com/storeq/storeq/internal/directory"
)

// Matcher resolves candidate names against one immutable directory snapshot.
type Matcher struct {
	dir *directory.Directory
}

// New returns a Matcher over the given directory.
func New(dir *directory.Directory) *Matcher {
	return &Matcher{dir: dir}
}

// Resolve returns the record the candidate names, or nil when it names none.
// Tiers are tried in order, stopping at the first success:
//
//  1. exact match on normalized storeName
//  2. match on a normalized alias
//  3. (fuzzy only) candidate contained in a record's normalized storeName or
//     alias, first record in load order wins
//
// A nil result is the normal "unresolved" outcome, not an error.
func (m *Matcher) Resolve(candidate string, fuzzy bool) *directory.Record {
	c := directory.Normalize(candidate)
	if c == "" {
		return nil
	}
	if r := m.dir.LookupExact(c); r != nil {
		return r
	}
	if r := m.dir.LookupAlias(c); r != nil {
		return r
	}
	if !fuzzy {
		return nil
	}
	for _, r := range m.dir.All() {
		if strings.Contains(directory.Normalize(r.StoreName), c) {
			return r
		}
		for _, a := range r.Aliases {
			if strings.Contains(directory.Normalize(a), c) {
				return r
			}
		}
	}
	return nil
}

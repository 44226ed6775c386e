package directory

import (
	"errors"
	"strings"
)

// ErrEmptyPattern is returned by FindByPattern for an empty pattern.
var ErrEmptyPattern = errors.New("pattern must not be empty")

// Record is one store in the directory: an opaque id, a display name, and
// optional alternate names.
type Record struct {
	StoreID   string   `json:"storeId"`
	StoreName string   `json:"storeName"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Directory is an immutable index over a loaded set of store records.
// Build it once with New; share it freely across goroutines.
type Directory struct {
	records []*Record
	byName  map[string]*Record // normalized storeName -> record
	byAlias map[string]*Record // normalized alias -> record
}

// Normalize lower-cases and trims a name for comparison. Every key in the
// directory index and every candidate tested against it goes through this.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New builds a Directory from records in load order. When two records collide
// on a normalized name or alias, the later record's mapping wins.
func New(records []Record) *Directory {
	d := &Directory{
		records: make([]*Record, 0, len(records)),
		byName:  make(map[string]*Record, len(records)),
		byAlias: make(map[string]*Record),
	}
	for i := range records {
		r := records[i]
		d.records = append(d.records, &r)
		d.byName[Normalize(r.StoreName)] = &r
		for _, a := range r.Aliases {
			d.byAlias[Normalize(a)] = &r
		}
	}
	return d
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// All returns every record in load order.
func (d *Directory) All() []*Record {
	return d.records
}

// LookupExact returns the record whose normalized storeName equals the given
// already-normalized key, or nil.
func (d *Directory) LookupExact(normalized string) *Record {
	return d.byName[normalized]
}

// LookupAlias returns the record owning the given already-normalized alias,
// or nil.
func (d *Directory) LookupAlias(normalized string) *Record {
	return d.byAlias[normalized]
}

// FindByPattern returns every record whose name or any alias contains pattern
// as a case-insensitive substring, in load order. An empty pattern is a
// caller error (ErrEmptyPattern), not an empty result.
func (d *Directory) FindByPattern(pattern string) ([]*Record, error) {
	p := Normalize(pattern)
	if p == "" {
		return nil, ErrEmptyPattern
	}
	var out []*Record
	for _, r := range d.records {
		if strings.Contains(Normalize(r.StoreName), p) {
			out = append(out, r)
			continue
		}
		for _, a := range r.Aliases {
			if strings.Contains(Normalize(a), p) {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

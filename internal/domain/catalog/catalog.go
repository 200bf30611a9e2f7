package catalog

import (
	"fmt"
	"sort"

	"github.com/kailas-cloud/dinefinder/internal/domain/normalize"
)

// Catalog is the read-only set of entries, built once at startup and shared by
// all requests. There are no mutating methods, so concurrent readers need no locking.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// NewCatalog builds a Catalog from entries in the given order. Duplicate IDs are rejected.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i := range c.entries {
		id := c.entries[i].ID()
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate entry ID %q", id)
		}
		c.byID[id] = i
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByID returns the entry with the given ID.
func (c *Catalog) ByID(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Cuisines returns the distinct cuisine labels, folded the way the cuisine
// filter compares them, and sorted.
func (c *Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	for i := range c.entries {
		if cu := normalize.Fold(c.entries[i].Cuisine()); cu != "" {
			seen[cu] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for cu := range seen {
		out = append(out, cu)
	}
	sort.Strings(out)
	return out
}

package result

import (
	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
)

// Ranked is a catalog entry paired with its distance to the search origin.
// Produced fresh per request; never cached.
type Ranked struct {
	entry      catalog.Entry
	distanceKm float64
}

// NewRanked creates a ranked result.
func NewRanked(entry catalog.Entry, distanceKm float64) Ranked {
	return Ranked{entry: entry, distanceKm: distanceKm}
}

// Entry returns the catalog entry.
func (r *Ranked) Entry() catalog.Entry { return r.entry }

// DistanceKm returns the great-circle distance in kilometers.
func (r *Ranked) DistanceKm() float64 { return r.distanceKm }

// Search is the outcome of one search request.
type Search struct {
	items    []Ranked
	resolved location.Resolution
}

// NewSearch creates a search result.
func NewSearch(items []Ranked, resolved location.Resolution) Search {
	return Search{items: items, resolved: resolved}
}

// Items returns the ranked entries in ascending distance order.
func (s *Search) Items() []Ranked { return s.items }

// Location returns how the search coordinate was obtained.
func (s *Search) Location() location.Resolution { return s.resolved }

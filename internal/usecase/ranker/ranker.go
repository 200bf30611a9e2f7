package ranker

import (
	"sort"

	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
)

// Rank computes each entry's distance to origin, drops entries that fail spec,
// stable-sorts by ascending distance and keeps the first limit.
// Entries is read only; the returned slice is freshly allocated.
func Rank(origin geo.Coordinate, entries []catalog.Entry, spec *filter.Spec, limit int) []result.Ranked {
	if limit <= 0 {
		return []result.Ranked{}
	}

	ranked := make([]result.Ranked, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !filter.Matches(e, spec) {
			continue
		}
		ranked = append(ranked, result.NewRanked(*e, geo.Distance(origin, e.Location())))
	}

	// Equal distances keep catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm() < ranked[j].DistanceKm()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

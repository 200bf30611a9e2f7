package ranker

import (
	"math/rand/v2"
	"testing"

	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
)

var origin = geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

func at(id string, lat, lng, rating float64) catalog.Entry {
	return catalog.Reconstruct(id, id, "thai", rating, catalog.Tier2, geo.Coordinate{Latitude: lat, Longitude: lng})
}

func ids(rs []result.Ranked) []string {
	out := make([]string, len(rs))
	for i := range rs {
		e := rs[i].Entry()
		out[i] = e.ID()
	}
	return out
}

func assertSorted(t *testing.T, rs []result.Ranked) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		if rs[i].DistanceKm() < rs[i-1].DistanceKm() {
			t.Fatalf("results not sorted at %d: %f < %f", i, rs[i].DistanceKm(), rs[i-1].DistanceKm())
		}
	}
}

func TestRank_OrderAndCap(t *testing.T) {
	entries := []catalog.Entry{
		at("far", 41.5, -74.0060, 4),
		at("near", 40.7130, -74.0060, 4),
		at("mid", 40.80, -74.0060, 4),
		at("here", 40.7128, -74.0060, 4),
		at("farther", 42.5, -74.0060, 4),
		at("farthest", 45, -74.0060, 4),
	}

	got := Rank(origin, entries, nil, 5)
	want := []string{"here", "near", "mid", "far", "farther"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Errorf("position %d: got %q, want %q", i, id, want[i])
		}
	}
	if got[0].DistanceKm() != 0 {
		t.Errorf("identical point distance: got %f", got[0].DistanceKm())
	}
	assertSorted(t, got)
}

func TestRank_StableTies(t *testing.T) {
	entries := []catalog.Entry{
		at("b", 41, -74.0060, 4),
		at("a", 41, -74.0060, 4),
		at("c", 41, -74.0060, 4),
	}
	got := ids(Rank(origin, entries, nil, 5))
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order: got %v, want %v", got, want)
		}
	}
}

func TestRank_FilterApplied(t *testing.T) {
	entries := []catalog.Entry{
		at("low", 40.72, -74.0, 3.0),
		at("high1", 40.80, -74.0, 4.5),
		at("high2", 40.90, -74.0, 4.9),
		at("mid", 40.71, -74.0, 4.4),
	}
	minRating := 4.5
	spec, err := filter.New(nil, &minRating, nil, nil)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}

	got := ids(Rank(origin, entries, &spec, 5))
	if len(got) != 2 || got[0] != "high1" || got[1] != "high2" {
		t.Fatalf("got %v, want [high1 high2]", got)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	entries := []catalog.Entry{
		at("z", 45, -74, 4),
		at("y", 41, -74, 4),
		at("x", 40.7128, -74.0060, 4),
	}
	before := make([]string, len(entries))
	for i := range entries {
		before[i] = entries[i].ID()
	}

	_ = Rank(origin, entries, nil, 2)

	for i := range entries {
		if entries[i].ID() != before[i] {
			t.Fatalf("input reordered: position %d is %q, was %q", i, entries[i].ID(), before[i])
		}
	}
}

func TestRank_EmptyAndZeroLimit(t *testing.T) {
	if got := Rank(origin, nil, nil, 5); len(got) != 0 {
		t.Errorf("empty catalog: got %d results", len(got))
	}
	if got := Rank(origin, []catalog.Entry{at("a", 0, 0, 1)}, nil, 0); len(got) != 0 {
		t.Errorf("zero limit: got %d results", len(got))
	}
}

func TestRank_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	minRating := 2.5
	spec, err := filter.New(nil, &minRating, nil, nil)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}

	for round := 0; round < 200; round++ {
		n := 1 + rng.IntN(20)
		entries := make([]catalog.Entry, n)
		for i := range entries {
			entries[i] = at(
				string(rune('a'+i)),
				rng.Float64()*180-90,
				rng.Float64()*360-180,
				rng.Float64()*5,
			)
		}
		o := geo.Coordinate{Latitude: rng.Float64()*180 - 90, Longitude: rng.Float64()*360 - 180}
		limit := 1 + rng.IntN(8)

		all := Rank(o, entries, nil, n)
		capped := Rank(o, entries, nil, limit)
		filtered := Rank(o, entries, &spec, n)

		assertSorted(t, capped)
		assertSorted(t, filtered)
		if len(capped) > limit || len(capped) > n {
			t.Fatalf("round %d: len %d exceeds min(%d, %d)", round, len(capped), limit, n)
		}
		if len(filtered) > len(all) {
			t.Fatalf("round %d: filtering increased candidates %d > %d", round, len(filtered), len(all))
		}
		for i := range all {
			if all[i].DistanceKm() < 0 {
				t.Fatalf("round %d: negative distance", round)
			}
		}
	}
}

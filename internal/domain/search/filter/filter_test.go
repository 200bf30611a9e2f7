package filter

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func entry(cuisine string, rating float64, price catalog.PriceTier) catalog.Entry {
	return catalog.Reconstruct("x", "X", cuisine, rating, price, geo.Coordinate{})
}

func mustSpec(t *testing.T, cuisine *string, minRating *float64, price, openAt *string) Spec {
	t.Helper()
	s, err := New(cuisine, minRating, price, openAt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestMatches_NilSpec(t *testing.T) {
	e := entry("thai", 1, catalog.Tier1)
	if !Matches(&e, nil) {
		t.Fatal("nil spec must match everything")
	}
}

func TestMatches_EmptySpec(t *testing.T) {
	s := mustSpec(t, strPtr(""), nil, strPtr(""), nil)
	if !s.IsEmpty() {
		t.Fatal("empty strings should be treated as absent")
	}
	e := entry("thai", 1, catalog.Tier1)
	if !Matches(&e, &s) {
		t.Fatal("empty spec must match")
	}
}

func TestMatches_Cuisine(t *testing.T) {
	s := mustSpec(t, strPtr("ITALIAN"), nil, nil, nil)

	tests := []struct {
		cuisine string
		want    bool
	}{
		{"Italian", true},
		{"italian", true},
		{"Italian-American", false},
		{"Ital", false},
		{"", false},
	}
	for _, tc := range tests {
		e := entry(tc.cuisine, 4, catalog.Tier2)
		if got := s.Matches(&e); got != tc.want {
			t.Errorf("cuisine %q: got %v, want %v", tc.cuisine, got, tc.want)
		}
	}
}

func TestMatches_MinRatingInclusive(t *testing.T) {
	s := mustSpec(t, nil, floatPtr(4.5), nil, nil)

	for rating, want := range map[float64]bool{4.4: false, 4.5: true, 5: true} {
		e := entry("thai", rating, catalog.Tier1)
		if got := s.Matches(&e); got != want {
			t.Errorf("rating %v: got %v, want %v", rating, got, want)
		}
	}
}

func TestMatches_PriceExact(t *testing.T) {
	s := mustSpec(t, nil, nil, strPtr("$$"), nil)

	for tier, want := range map[catalog.PriceTier]bool{
		catalog.Tier1: false, catalog.Tier2: true, catalog.Tier3: false,
	} {
		e := entry("thai", 3, tier)
		if got := s.Matches(&e); got != want {
			t.Errorf("tier %q: got %v, want %v", tier, got, want)
		}
	}
}

func TestMatches_AllCombined(t *testing.T) {
	s := mustSpec(t, strPtr("thai"), floatPtr(4), strPtr("$$"), nil)

	match := entry("Thai", 4.2, catalog.Tier2)
	if !s.Matches(&match) {
		t.Error("expected match")
	}

	wrongPrice := entry("Thai", 4.2, catalog.Tier3)
	lowRating := entry("Thai", 3.9, catalog.Tier2)
	wrongCuisine := entry("Lao", 4.9, catalog.Tier2)
	for _, e := range []catalog.Entry{wrongPrice, lowRating, wrongCuisine} {
		if s.Matches(&e) {
			t.Errorf("unexpected match for %q %v %q", e.Cuisine(), e.Rating(), e.Price())
		}
	}
}

func TestMatches_OpenAt(t *testing.T) {
	a, err := catalog.New(catalog.Attributes{
		ID: "late", Name: "Late", Rating: 4, Price: "$",
		Open: "18:00", Close: "02:00",
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	if s := mustSpec(t, nil, nil, nil, strPtr("01:00")); !s.Matches(&a) {
		t.Error("expected open at 01:00")
	}
	if s := mustSpec(t, nil, nil, nil, strPtr("12:00")); s.Matches(&a) {
		t.Error("expected closed at 12:00")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		minRating *float64
		price     *string
		openAt    *string
	}{
		{"rating above 5", floatPtr(5.5), nil, nil},
		{"rating negative", floatPtr(-0.1), nil, nil},
		{"unknown tier", nil, strPtr("cheap"), nil},
		{"bad time", nil, nil, strPtr("7pm")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(nil, tc.minRating, tc.price, tc.openAt)
			if !errors.Is(err, domain.ErrInvalidFilter) {
				t.Fatalf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}

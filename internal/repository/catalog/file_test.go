package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/dinefinder/internal/domain"
)

const yamlCatalog = `
restaurants:
  - id: joes-pizza
    name: Joe's Pizza
    cuisine: Italian
    description: Classic NY slices
    rating: 4.5
    priceRange: $
    openingHours: {open: "10:00", close: "02:00"}
    latitude: 40.7306
    longitude: -73.9897
    phone: (212) 366-1182
    address: 7 Carmine St, New York, NY
  - id: katz
    name: Katz's Delicatessen
    cuisine: Deli
    rating: 4.4
    priceRange: $$
    openingHours: {open: "08:00", close: "22:45"}
    latitude: 40.7223
    longitude: -73.9874
`

const jsonCatalog = `{"restaurants":[{"id":"nobu","name":"Nobu","cuisine":"Japanese",
"rating":4.7,"priceRange":"$$$$","openingHours":{"open":"17:00","close":"23:00"},
"latitude":40.7197,"longitude":-74.0101}]}`

func TestParse_YAML(t *testing.T) {
	entries, err := Parse([]byte(yamlCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	e := entries[0]
	if e.ID() != "joes-pizza" || e.Cuisine() != "Italian" || e.Phone() != "(212) 366-1182" {
		t.Errorf("unexpected entry: %s %s %s", e.ID(), e.Cuisine(), e.Phone())
	}
	if !e.Hours().WrapsMidnight() {
		t.Error("expected hours to wrap midnight")
	}
}

func TestParse_JSON(t *testing.T) {
	entries, err := Parse([]byte(jsonCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Price() != "$$$$" {
		t.Fatalf("unexpected entries: %d", len(entries))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "restaurants: [\n"},
		{"bad rating", `restaurants: [{id: a, name: A, rating: 7, priceRange: $, openingHours: {open: "09:00", close: "17:00"}}]`},
		{"bad price", `restaurants: [{id: a, name: A, rating: 3, priceRange: cheap, openingHours: {open: "09:00", close: "17:00"}}]`},
		{"bad latitude", `restaurants: [{id: a, name: A, rating: 3, priceRange: $, openingHours: {open: "09:00", close: "17:00"}, latitude: 95}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.yaml")
	if err := os.WriteFile(path, []byte(yamlCatalog), 0o600); err != nil {
		t.Fatal(err)
	}

	entries, err := NewFileSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

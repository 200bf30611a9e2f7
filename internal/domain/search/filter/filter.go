package filter

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/normalize"
)

// Spec is an optional set of attribute predicates combined with logical AND.
// A nil field is an absent sub-filter and is vacuously true.
type Spec struct {
	cuisine   *string
	minRating *float64
	price     *catalog.PriceTier
	openAt    *catalog.TimeOfDay
}

// New validates sub-filters and creates a Spec. Empty strings count as absent.
func New(cuisine *string, minRating *float64, price, openAt *string) (Spec, error) {
	var s Spec

	if cuisine != nil && *cuisine != "" {
		c := normalize.Fold(*cuisine)
		s.cuisine = &c
	}

	if minRating != nil {
		r := *minRating
		if math.IsNaN(r) || r < catalog.MinRating || r > catalog.MaxRating {
			return Spec{}, fmt.Errorf("%w: minRating must be between %v and %v",
				domain.ErrInvalidFilter, catalog.MinRating, catalog.MaxRating)
		}
		s.minRating = &r
	}

	if price != nil && *price != "" {
		t, err := catalog.ParsePriceTier(*price)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: priceRange: %w", domain.ErrInvalidFilter, err)
		}
		s.price = &t
	}

	if openAt != nil && *openAt != "" {
		tod, err := catalog.ParseTimeOfDay(*openAt)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: openAt: %w", domain.ErrInvalidFilter, err)
		}
		s.openAt = &tod
	}

	return s, nil
}

// IsEmpty reports whether no sub-filter is present.
func (s Spec) IsEmpty() bool {
	return s.cuisine == nil && s.minRating == nil && s.price == nil && s.openAt == nil
}

// Matches reports whether e satisfies every present sub-filter.
func (s Spec) Matches(e *catalog.Entry) bool {
	if s.cuisine != nil && normalize.Fold(e.Cuisine()) != *s.cuisine {
		return false
	}
	if s.minRating != nil && e.Rating() < *s.minRating {
		return false
	}
	if s.price != nil && e.Price() != *s.price {
		return false
	}
	if s.openAt != nil && !e.Hours().OpenAt(*s.openAt) {
		return false
	}
	return true
}

// Matches evaluates an optional spec: nil always matches.
func Matches(e *catalog.Entry, s *Spec) bool {
	if s == nil {
		return true
	}
	return s.Matches(e)
}

package catalog

import (
	"fmt"
	"math"
	"regexp"

	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Rating bounds.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Entry is a single restaurant in the catalog (immutable value object).
type Entry struct {
	id          string
	name        string
	cuisine     string
	description string
	rating      float64
	price       PriceTier
	hours       Hours
	location    geo.Coordinate
	phone       string
	address     string
}

// Attributes holds the raw fields used to build an Entry.
type Attributes struct {
	ID          string
	Name        string
	Cuisine     string
	Description string
	Rating      float64
	Price       string
	Open        string
	Close       string
	Latitude    float64
	Longitude   float64
	Phone       string
	Address     string
}

// New validates attributes and creates an Entry.
func New(a Attributes) (Entry, error) {
	if a.ID == "" {
		return Entry{}, fmt.Errorf("entry ID is required")
	}
	if len(a.ID) > 256 || !idRegex.MatchString(a.ID) {
		return Entry{}, fmt.Errorf("entry ID %q must be 1-256 alphanumeric, underscore or hyphen characters", a.ID)
	}
	if a.Name == "" {
		return Entry{}, fmt.Errorf("entry %q: name is required", a.ID)
	}
	if math.IsNaN(a.Rating) || a.Rating < MinRating || a.Rating > MaxRating {
		return Entry{}, fmt.Errorf("entry %q: rating must be between %v and %v, got %v", a.ID, MinRating, MaxRating, a.Rating)
	}
	price, err := ParsePriceTier(a.Price)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", a.ID, err)
	}
	hours, err := ParseHours(a.Open, a.Close)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", a.ID, err)
	}
	loc, err := geo.NewCoordinate(a.Latitude, a.Longitude)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", a.ID, err)
	}

	return Entry{
		id:          a.ID,
		name:        a.Name,
		cuisine:     a.Cuisine,
		description: a.Description,
		rating:      a.Rating,
		price:       price,
		hours:       hours,
		location:    loc,
		phone:       a.Phone,
		address:     a.Address,
	}, nil
}

// Reconstruct creates an Entry without validation (tests, trusted hydration).
func Reconstruct(
	id, name, cuisine string, rating float64, price PriceTier, location geo.Coordinate,
) Entry {
	return Entry{id: id, name: name, cuisine: cuisine, rating: rating, price: price, location: location}
}

// ID returns the entry identifier.
func (e *Entry) ID() string { return e.id }

// Name returns the restaurant name.
func (e *Entry) Name() string { return e.name }

// Cuisine returns the category label.
func (e *Entry) Cuisine() string { return e.cuisine }

// Description returns the free-text description.
func (e *Entry) Description() string { return e.description }

// Rating returns the quality score in [0,5].
func (e *Entry) Rating() float64 { return e.rating }

// Price returns the price tier.
func (e *Entry) Price() PriceTier { return e.price }

// Hours returns the daily opening window.
func (e *Entry) Hours() Hours { return e.hours }

// Location returns the geographic coordinate.
func (e *Entry) Location() geo.Coordinate { return e.location }

// Phone returns the contact string.
func (e *Entry) Phone() string { return e.phone }

// Address returns the street address.
func (e *Entry) Address() string { return e.address }

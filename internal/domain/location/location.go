package location

import "github.com/kailas-cloud/dinefinder/internal/domain/geo"

// Source describes how a search coordinate was obtained.
type Source string

const (
	// SourceCoordinates means the caller supplied latitude/longitude.
	SourceCoordinates Source = "coordinates"
	// SourceLookup means free text matched a known place.
	SourceLookup Source = "lookup"
	// SourceDefault means nothing was supplied or matched and the default was used.
	SourceDefault Source = "default"
)

// Query is a location request: an explicit pair, free text, or neither.
// Latitude and Longitude are raw (unvalidated) values.
type Query struct {
	Latitude  *float64
	Longitude *float64
	Text      string
}

// FromCoordinates builds a query carrying an explicit pair.
func FromCoordinates(lat, lng float64) Query {
	return Query{Latitude: &lat, Longitude: &lng}
}

// FromText builds a free-text query.
func FromText(text string) Query {
	return Query{Text: text}
}

// HasCoordinates reports whether either half of an explicit pair is present.
func (q Query) HasCoordinates() bool {
	return q.Latitude != nil || q.Longitude != nil
}

// Resolution is the outcome of resolving a Query.
type Resolution struct {
	Coordinate geo.Coordinate
	Label      string
	Source     Source
}

// IsFallback reports whether the default coordinate was substituted.
func (r Resolution) IsFallback() bool { return r.Source == SourceDefault }

package dinefinder

// Restaurant is one catalog entry.
type Restaurant struct {
	ID          string
	Name        string
	Cuisine     string
	Description string
	Rating      float64
	PriceRange  string // "$" .. "$$$$"
	Open        string // HH:MM
	Close       string // HH:MM
	Latitude    float64
	Longitude   float64
	Phone       string
	Address     string
}

// Match is a restaurant with its distance from the search point.
type Match struct {
	Restaurant
	DistanceKm float64
}

// LocationSource tells how the search point was obtained.
type LocationSource string

// Location source constants.
const (
	SourceCoordinates LocationSource = "coordinates"
	SourceLookup      LocationSource = "lookup"
	SourceDefault     LocationSource = "default"
)

// SearchLocation is the resolved search point.
type SearchLocation struct {
	Latitude  float64
	Longitude float64
	Label     string
	Source    LocationSource
}

// NearbyResult holds at most five matches ordered by distance.
type NearbyResult struct {
	Restaurants []Match
	Location    SearchLocation
}

// NearbyQuery describes a search. Latitude and Longitude must be set together;
// otherwise Address is looked up, and with neither the default location is used.
// Empty filter fields are ignored.
type NearbyQuery struct {
	Latitude   *float64
	Longitude  *float64
	Address    string
	Cuisine    string
	MinRating  *float64
	PriceRange string
	OpenAt     string // HH:MM
}

// Place is a named location used for address lookup.
type Place struct {
	Name      string // matched case-insensitively as a substring of the address
	Label     string
	Latitude  float64
	Longitude float64
}

// Float returns a pointer to v, for optional query fields.
func Float(v float64) *float64 { return &v }

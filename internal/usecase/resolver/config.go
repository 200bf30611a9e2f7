package resolver

import "github.com/kailas-cloud/dinefinder/internal/domain/geo"

// Place is a known place name mapped to a coordinate.
type Place struct {
	// Name is matched against the query by containment after folding.
	Name string
	// Label is the human-readable description returned to callers.
	Label      string
	Coordinate geo.Coordinate
}

// Config is the lookup table and fallback used by a Resolver.
// Places are tried in slice order; the first match wins.
type Config struct {
	Places  []Place
	Default Place
}

// DefaultConfig returns the built-in New York table. More specific names come
// before the broader ones that would also contain them.
func DefaultConfig() Config {
	return Config{
		Default: Place{
			Name:       "new york",
			Label:      "New York, NY",
			Coordinate: geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
		},
		Places: []Place{
			{"times square", "Times Square, New York, NY", geo.Coordinate{Latitude: 40.7580, Longitude: -73.9855}},
			{"central park", "Central Park, New York, NY", geo.Coordinate{Latitude: 40.7829, Longitude: -73.9654}},
			{"empire state", "Empire State Building, New York, NY", geo.Coordinate{Latitude: 40.7484, Longitude: -73.9857}},
			{"wall street", "Wall Street, New York, NY", geo.Coordinate{Latitude: 40.7060, Longitude: -74.0086}},
			{"greenwich village", "Greenwich Village, New York, NY", geo.Coordinate{Latitude: 40.7336, Longitude: -74.0027}},
			{"east village", "East Village, New York, NY", geo.Coordinate{Latitude: 40.7265, Longitude: -73.9815}},
			{"soho", "SoHo, New York, NY", geo.Coordinate{Latitude: 40.7233, Longitude: -74.0030}},
			{"chinatown", "Chinatown, New York, NY", geo.Coordinate{Latitude: 40.7158, Longitude: -73.9970}},
			{"little italy", "Little Italy, New York, NY", geo.Coordinate{Latitude: 40.7191, Longitude: -73.9973}},
			{"upper west side", "Upper West Side, New York, NY", geo.Coordinate{Latitude: 40.7870, Longitude: -73.9754}},
			{"upper east side", "Upper East Side, New York, NY", geo.Coordinate{Latitude: 40.7736, Longitude: -73.9566}},
			{"harlem", "Harlem, New York, NY", geo.Coordinate{Latitude: 40.8116, Longitude: -73.9465}},
			{"williamsburg", "Williamsburg, Brooklyn, NY", geo.Coordinate{Latitude: 40.7081, Longitude: -73.9571}},
			{"brooklyn", "Brooklyn, NY", geo.Coordinate{Latitude: 40.6782, Longitude: -73.9442}},
			{"queens", "Queens, NY", geo.Coordinate{Latitude: 40.7282, Longitude: -73.7949}},
			{"manhattan", "Manhattan, New York, NY", geo.Coordinate{Latitude: 40.7831, Longitude: -73.9712}},
			{"new york", "New York, NY", geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}},
		},
	}
}

package geo

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/dinefinder/internal/domain"
)

// EarthRadiusKm is the mean radius of Earth used for Haversine distance.
const EarthRadiusKm = 6371.0

// Coordinate is a validated latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate validates latitude/longitude and returns a Coordinate.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if !ValidateCoordinates(lat, lng) {
		return Coordinate{}, fmt.Errorf("%w: latitude %v, longitude %v", domain.ErrInvalidCoordinate, lat, lng)
	}
	return Coordinate{Latitude: lat, Longitude: lng}, nil
}

// ValidateCoordinates checks that both values are finite, latitude is in [-90,90]
// and longitude in [-180,180].
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Distance returns the great-circle distance in kilometers between a and b.
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Rounding near antipodes can push h slightly outside [0,1].
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

package catalog

import (
	"fmt"
	"strconv"

	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
)

// document is the on-disk catalog layout (YAML or JSON).
type document struct {
	Restaurants []entryRow `yaml:"restaurants"`
}

type hoursRow struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type entryRow struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Cuisine      string   `yaml:"cuisine"`
	Description  string   `yaml:"description"`
	Rating       float64  `yaml:"rating"`
	PriceRange   string   `yaml:"priceRange"`
	OpeningHours hoursRow `yaml:"openingHours"`
	Latitude     float64  `yaml:"latitude"`
	Longitude    float64  `yaml:"longitude"`
	Phone        string   `yaml:"phone"`
	Address      string   `yaml:"address"`
}

func (r *entryRow) attributes() domcat.Attributes {
	return domcat.Attributes{
		ID:          r.ID,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Description: r.Description,
		Rating:      r.Rating,
		Price:       r.PriceRange,
		Open:        r.OpeningHours.Open,
		Close:       r.OpeningHours.Close,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

// entryToHash converts an Entry to a map for HSET.
func entryToHash(e *domcat.Entry) map[string]string {
	h := e.Hours()
	loc := e.Location()
	return map[string]string{
		"id":          e.ID(),
		"name":        e.Name(),
		"cuisine":     e.Cuisine(),
		"description": e.Description(),
		"rating":      strconv.FormatFloat(e.Rating(), 'f', -1, 64),
		"price_range": string(e.Price()),
		"open":        h.Open.String(),
		"close":       h.Close.String(),
		"latitude":    strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		"phone":       e.Phone(),
		"address":     e.Address(),
	}
}

// entryFromHash parses HGETALL output back into a validated Entry.
func entryFromHash(m map[string]string) (domcat.Entry, error) {
	rating, err := parseFloat(m, "rating")
	if err != nil {
		return domcat.Entry{}, err
	}
	lat, err := parseFloat(m, "latitude")
	if err != nil {
		return domcat.Entry{}, err
	}
	lng, err := parseFloat(m, "longitude")
	if err != nil {
		return domcat.Entry{}, err
	}

	return domcat.New(domcat.Attributes{
		ID:          m["id"],
		Name:        m["name"],
		Cuisine:     m["cuisine"],
		Description: m["description"],
		Rating:      rating,
		Price:       m["price_range"],
		Open:        m["open"],
		Close:       m["close"],
		Latitude:    lat,
		Longitude:   lng,
		Phone:       m["phone"],
		Address:     m["address"],
	})
}

func parseFloat(m map[string]string, field string) (float64, error) {
	v, err := strconv.ParseFloat(m[field], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}
